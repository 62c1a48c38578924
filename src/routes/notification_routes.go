package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/linknest/backend/src/controllers"
)

// NotificationRoutes sets up notification listing and read-state routes.
func NotificationRoutes(app *fiber.App, ctrl *controllers.NotificationController, protect fiber.Handler) {
	notifications := app.Group("/api/v1/notifications", protect)

	notifications.Get("/", ctrl.GetUserNotifications)
	notifications.Put("/:id/read", ctrl.MarkNotificationAsRead)
	notifications.Put("/read-all", ctrl.MarkAllNotificationsAsRead)
}
