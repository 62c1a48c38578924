package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/linknest/backend/src/lib"
	"github.com/linknest/backend/src/models"
	"github.com/linknest/backend/src/services"
)

type ConnectionController struct {
	connections *services.ConnectionService
}

func NewConnectionController(connections *services.ConnectionService) *ConnectionController {
	return &ConnectionController{connections: connections}
}

// SendConnectionRequest sends a request from the authenticated user to the
// user in the path.
func (ct *ConnectionController) SendConnectionRequest(c *fiber.Ctx) error {
	targetID, err := paramUint(c, "userId")
	if err != nil {
		return errorResponse(c, err)
	}

	user := currentUser(c)

	if _, err := ct.connections.SendRequest(c.Context(), user.ID, targetID); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(lib.MessageResponse("Connection request sent successfully"))
}

// AcceptConnectionRequest accepts a pending request the user in the path
// sent to the authenticated user.
func (ct *ConnectionController) AcceptConnectionRequest(c *fiber.Ctx) error {
	senderID, err := paramUint(c, "userId")
	if err != nil {
		return errorResponse(c, err)
	}

	user := currentUser(c)

	if _, err := ct.connections.AcceptRequest(c.Context(), senderID, user.ID); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(lib.MessageResponse("Connection accepted successfully"))
}

// RejectConnectionRequest rejects a pending request the user in the path
// sent to the authenticated user.
func (ct *ConnectionController) RejectConnectionRequest(c *fiber.Ctx) error {
	senderID, err := paramUint(c, "userId")
	if err != nil {
		return errorResponse(c, err)
	}

	user := currentUser(c)

	if _, err := ct.connections.RejectRequest(c.Context(), senderID, user.ID); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(lib.MessageResponse("Connection request rejected"))
}

// GetConnectionRequests lists the pending requests addressed to the
// authenticated user, newest first.
func (ct *ConnectionController) GetConnectionRequests(c *fiber.Ctx) error {
	user := currentUser(c)

	requests, err := ct.connections.ListPendingRequests(c.Context(), user.ID)
	if err != nil {
		return errorResponse(c, err)
	}

	response := make([]models.ConnectionRequestDto, 0, len(requests))
	for _, req := range requests {
		response = append(response, models.ConnectionRequestDto{
			ID:        req.ID,
			Sender:    req.Sender.ToDto(),
			Receiver:  req.ReceiverID,
			Status:    string(req.Status),
			CreatedAt: req.CreatedAt.Format(time.RFC3339),
			UpdatedAt: req.UpdatedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(response)
}

// GetUserConnections lists the users connected to the authenticated user.
func (ct *ConnectionController) GetUserConnections(c *fiber.Ctx) error {
	user := currentUser(c)

	partners, err := ct.connections.GetConnections(c.Context(), user.ID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(toUserDtos(partners))
}

// GetConnectionStatus reports the relation between the authenticated user
// and the user in the path: connected, pending (sent), received or
// not_connected.
func (ct *ConnectionController) GetConnectionStatus(c *fiber.Ctx) error {
	targetID, err := paramUint(c, "userId")
	if err != nil {
		return errorResponse(c, err)
	}

	user := currentUser(c)
	if user.ID == targetID {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Cannot check connection status with yourself"))
	}

	connected, err := ct.connections.AreConnected(c.Context(), user.ID, targetID)
	if err != nil {
		return errorResponse(c, err)
	}
	if connected {
		return c.JSON(fiber.Map{"status": "connected"})
	}

	sent, err := ct.connections.IsPending(c.Context(), user.ID, targetID)
	if err != nil {
		return errorResponse(c, err)
	}
	if sent {
		return c.JSON(fiber.Map{"status": "pending"})
	}

	received, err := ct.connections.IsPending(c.Context(), targetID, user.ID)
	if err != nil {
		return errorResponse(c, err)
	}
	if received {
		return c.JSON(fiber.Map{"status": "received"})
	}

	return c.JSON(fiber.Map{"status": "not_connected"})
}
