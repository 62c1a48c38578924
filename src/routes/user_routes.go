package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/linknest/backend/src/controllers"
)

// UserRoutes sets up user-related routes for suggestions, search, profile
// view and profile update.
func UserRoutes(app *fiber.App, userCtrl *controllers.UserController, postCtrl *controllers.PostController, protect fiber.Handler) {
	users := app.Group("/api/v1/users", protect)

	users.Get("/suggestions", userCtrl.GetSuggestedConnections)
	users.Get("/search", userCtrl.SearchUsers)
	users.Get("/:id/profile", userCtrl.GetProfile)
	users.Get("/:id/posts", postCtrl.GetPostsByUser)
	users.Put("/profile", userCtrl.UpdateProfile)
}
