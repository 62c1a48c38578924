package lib

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

var ErrFileTooLarge = errors.New("file exceeds the maximum upload size")

// UploadPath builds a unique destination path for an uploaded file inside
// uploadDir, keeping the original extension. The directory is created on
// first use.
func UploadPath(file *multipart.FileHeader, uploadDir string, maxSize int64) (string, error) {
	if file.Size > maxSize {
		return "", ErrFileTooLarge
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", err
	}

	name := uuid.New().String() + filepath.Ext(file.Filename)
	return filepath.Join(uploadDir, name), nil
}
