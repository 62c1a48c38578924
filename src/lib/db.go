package lib

import (
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens a GORM connection for the given DSN. Postgres DSNs are
// recognized by their usual prefixes, anything else is treated as a SQLite
// file path. TranslateError is on so unique-constraint violations surface
// as gorm.ErrDuplicatedKey on both drivers.
func ConnectDB(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	slog.Info("connected to database", "dialect", dialector.Name())
	return db, nil
}
