package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/linknest/backend/src/lib"
	"github.com/linknest/backend/src/services"
)

const AuthCookieName = "jwt-linknest"

// ProtectRoute returns a middleware that authenticates the request via a
// bearer token or the session cookie, loads the user and stores it in
// Locals("user").
func ProtectRoute(users *services.UserService, jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			token = c.Cookies(AuthCookieName)
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Unauthorized - no token provided"))
		}

		userID, err := lib.VerifyJWT(token, jwtSecret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Unauthorized - invalid token"))
		}

		user, err := users.GetUserByID(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Unauthorized - user not found"))
		}

		c.Locals("user", *user)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return header[len("Bearer "):]
	}
	return ""
}
