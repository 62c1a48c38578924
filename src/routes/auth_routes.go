package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/linknest/backend/src/controllers"
)

// AuthRoutes sets up signup, login, logout and current-user routes. Signup
// and login sit behind the rate limiter.
func AuthRoutes(app *fiber.App, ctrl *controllers.AuthController, limit fiber.Handler, protect fiber.Handler) {
	auth := app.Group("/api/v1/auth")

	auth.Post("/signup", limit, ctrl.Signup)
	auth.Post("/login", limit, ctrl.Login)
	auth.Post("/logout", ctrl.Logout)
	auth.Get("/me", protect, ctrl.GetCurrentUser)
}
