package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/linknest/backend/src/config"
	"github.com/linknest/backend/src/lib"
	"github.com/linknest/backend/src/models"
	"github.com/linknest/backend/src/services"
)

type UserController struct {
	users       *services.UserService
	posts       *services.PostService
	connections *services.ConnectionService
	cfg         config.Config
}

func NewUserController(users *services.UserService, posts *services.PostService, connections *services.ConnectionService, cfg config.Config) *UserController {
	return &UserController{users: users, posts: posts, connections: connections, cfg: cfg}
}

// GetSuggestedConnections returns users the authenticated user could connect
// with: no self, no accepted partners.
func (ct *UserController) GetSuggestedConnections(c *fiber.Ctx) error {
	user := currentUser(c)

	suggestions, err := ct.users.GetSuggestedConnections(c.Context(), user.ID, queryLimit(c))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(toUserDtos(suggestions))
}

// SearchUsers matches the query against first name, last name and headline.
func (ct *UserController) SearchUsers(c *fiber.Ctx) error {
	query := c.Query("q")

	users, err := ct.users.SearchUsers(c.Context(), query, queryLimit(c))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"users": toUserDtos(users),
		"total": len(users),
	})
}

// GetProfile returns a user's profile with their posts, connection count and
// the viewer's relation to them.
func (ct *UserController) GetProfile(c *fiber.Ctx) error {
	viewer := currentUser(c)

	userID, err := paramUint(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	user, err := ct.users.GetUserByID(c.Context(), userID)
	if err != nil {
		return errorResponse(c, err)
	}

	posts, err := ct.posts.GetPostsByUser(c.Context(), user.ID, queryLimit(c))
	if err != nil {
		return errorResponse(c, err)
	}

	count, err := ct.connections.CountConnections(c.Context(), user.ID)
	if err != nil {
		return errorResponse(c, err)
	}

	isConnected := false
	isPending := false
	if viewer.ID != user.ID {
		if isConnected, err = ct.connections.AreConnected(c.Context(), viewer.ID, user.ID); err != nil {
			return errorResponse(c, err)
		}
		if isPending, err = ct.connections.IsPending(c.Context(), viewer.ID, user.ID); err != nil {
			return errorResponse(c, err)
		}
	}

	return c.JSON(fiber.Map{
		"user":               user,
		"posts":              toPostDtos(posts),
		"connections_count":  count,
		"is_connected":       isConnected,
		"connection_pending": isPending,
	})
}

// UpdateProfile applies profile edits for the authenticated user. A
// multipart request may carry a profile_picture file, stored under the
// upload dir with a generated name.
func (ct *UserController) UpdateProfile(c *fiber.Ctx) error {
	user := currentUser(c)

	var update models.ProfileUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	if file, err := c.FormFile("profile_picture"); err == nil {
		path, err := lib.UploadPath(file, ct.cfg.UploadDir, ct.cfg.MaxUploadSize)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(err.Error()))
		}
		if err := c.SaveFile(file, path); err != nil {
			return errorResponse(c, err)
		}
		update.ProfilePicture = &path
	}

	updated, err := ct.users.UpdateProfile(c.Context(), user.ID, update)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(updated)
}
