package lib

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// MessageResponse returns a map with a message key for API responses.
func MessageResponse(message string) fiber.Map {
	return fiber.Map{
		"message": message,
	}
}

// GenerateJWT creates a signed HS256 token carrying the user ID.
func GenerateJWT(userID uint, secret string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"userId": float64(userID),
		"exp":    time.Now().Add(expiry).Unix(),
		"iat":    time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyJWT validates a token string and returns the user ID it carries.
func VerifyJWT(tokenString, secret string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	userID, ok := claims["userId"].(float64)
	if !ok || userID <= 0 {
		return 0, ErrInvalidToken
	}

	return uint(userID), nil
}

// TimeAgo formats a timestamp as a rough "time ago" string for feeds.
func TimeAgo(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff >= 24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	case diff >= time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff >= time.Minute:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	default:
		return "Just now"
	}
}
