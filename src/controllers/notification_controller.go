package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/linknest/backend/src/lib"
	"github.com/linknest/backend/src/models"
	"github.com/linknest/backend/src/services"
)

type NotificationController struct {
	notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{notifications: notifications}
}

// GetUserNotifications returns the authenticated user's notifications,
// newest first.
func (ct *NotificationController) GetUserNotifications(c *fiber.Ctx) error {
	user := currentUser(c)

	notifications, err := ct.notifications.ListForUser(c.Context(), user.ID)
	if err != nil {
		return errorResponse(c, err)
	}

	response := make([]models.NotificationDto, 0, len(notifications))
	for i := range notifications {
		response = append(response, toNotificationDto(notifications[i]))
	}

	return c.JSON(response)
}

// MarkNotificationAsRead marks one of the user's notifications as read.
func (ct *NotificationController) MarkNotificationAsRead(c *fiber.Ctx) error {
	notificationID, err := paramUint(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	user := currentUser(c)

	notification, err := ct.notifications.MarkRead(c.Context(), user.ID, notificationID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(toNotificationDto(*notification))
}

// MarkAllNotificationsAsRead marks every unread notification as read.
func (ct *NotificationController) MarkAllNotificationsAsRead(c *fiber.Ctx) error {
	user := currentUser(c)

	if err := ct.notifications.MarkAllRead(c.Context(), user.ID); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(lib.MessageResponse("All notifications marked as read"))
}

func toNotificationDto(n models.Notification) models.NotificationDto {
	dto := models.NotificationDto{
		ID:        n.ID,
		Type:      n.Type,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
	if n.RelatedUserID != 0 {
		related := n.RelatedUser.ToDto()
		dto.RelatedUser = &related
	}
	return dto
}
