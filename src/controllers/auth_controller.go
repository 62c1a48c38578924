package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/linknest/backend/src/config"
	"github.com/linknest/backend/src/lib"
	"github.com/linknest/backend/src/middleware"
	"github.com/linknest/backend/src/services"
)

type AuthController struct {
	users *services.UserService
	cfg   config.Config
}

func NewAuthController(users *services.UserService, cfg config.Config) *AuthController {
	return &AuthController{users: users, cfg: cfg}
}

// Signup registers a new user and returns a session token.
func (ct *AuthController) Signup(c *fiber.Ctx) error {
	var input services.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	user, err := ct.users.CreateUser(c.Context(), input)
	if err != nil {
		return errorResponse(c, err)
	}

	token, err := lib.GenerateJWT(user.ID, ct.cfg.JWTSecret, ct.cfg.JWTExpiry)
	if err != nil {
		return errorResponse(c, err)
	}

	ct.setAuthCookie(c, token)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"token":   token,
		"user":    user.ToDto(),
	})
}

// Login authenticates by email and password and returns a session token.
func (ct *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}
	if input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Email and password are required"))
	}

	user, err := ct.users.Authenticate(c.Context(), input.Email, input.Password)
	if err != nil {
		return errorResponse(c, err)
	}

	token, err := lib.GenerateJWT(user.ID, ct.cfg.JWTSecret, ct.cfg.JWTExpiry)
	if err != nil {
		return errorResponse(c, err)
	}

	ct.setAuthCookie(c, token)
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    user.ToDto(),
	})
}

// Logout clears the session cookie.
func (ct *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Expires:  time.Now().Add(-1 * time.Hour),
		HTTPOnly: true,
		SameSite: "Strict",
		Path:     "/",
	})
	return c.JSON(lib.MessageResponse("Logged out successfully"))
}

// GetCurrentUser returns the authenticated user.
func (ct *AuthController) GetCurrentUser(c *fiber.Ctx) error {
	user := currentUser(c)
	return c.JSON(user)
}

func (ct *AuthController) setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		Expires:  time.Now().Add(ct.cfg.JWTExpiry),
		HTTPOnly: true,
		SameSite: "Strict",
		Secure:   ct.cfg.Env == "production",
		Path:     "/",
	})
}
