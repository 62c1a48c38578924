package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/linknest/backend/src/controllers"
)

// ConnectionRoutes sets up the connection request lifecycle and relation
// query routes.
func ConnectionRoutes(app *fiber.App, ctrl *controllers.ConnectionController, protect fiber.Handler) {
	connections := app.Group("/api/v1/connections", protect)

	connections.Post("/send/:userId", ctrl.SendConnectionRequest)
	connections.Post("/accept/:userId", ctrl.AcceptConnectionRequest)
	connections.Post("/reject/:userId", ctrl.RejectConnectionRequest)
	connections.Get("/requests", ctrl.GetConnectionRequests)
	connections.Get("/status/:userId", ctrl.GetConnectionStatus)
	connections.Get("/", ctrl.GetUserConnections)
}
