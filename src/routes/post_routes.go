package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/linknest/backend/src/controllers"
)

// PostRoutes sets up post creation and feed routes.
func PostRoutes(app *fiber.App, ctrl *controllers.PostController, protect fiber.Handler) {
	posts := app.Group("/api/v1/posts", protect)

	posts.Post("/", ctrl.CreatePost)
	posts.Get("/", ctrl.GetRecentPosts)
	posts.Get("/feed", ctrl.GetFeedPosts)
}
