package controllers

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/linknest/backend/src/lib"
	"github.com/linknest/backend/src/models"
	"github.com/linknest/backend/src/services"
)

const defaultLimit = 20

// errorResponse maps service error kinds onto HTTP statuses. Anything
// outside the taxonomy is a 500 and gets logged.
func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case services.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(err.Error()))
	case services.IsConflict(err):
		return c.Status(fiber.StatusConflict).JSON(lib.MessageResponse(err.Error()))
	case services.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse(err.Error()))
	case services.IsAuthentication(err):
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse(err.Error()))
	default:
		slog.Error("request failed", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
}

// currentUser returns the user the auth middleware stored on the context.
func currentUser(c *fiber.Ctx) models.User {
	return c.Locals("user").(models.User)
}

func paramUint(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, &services.ValidationError{Message: "invalid " + name + " format"}
	}
	return uint(id), nil
}

func queryLimit(c *fiber.Ctx) int {
	limit := c.QueryInt("limit", defaultLimit)
	if limit <= 0 || limit > 100 {
		limit = defaultLimit
	}
	return limit
}

func toUserDtos(users []models.User) []models.UserDto {
	dtos := make([]models.UserDto, 0, len(users))
	for i := range users {
		dtos = append(dtos, users[i].ToDto())
	}
	return dtos
}

func toPostDto(post models.Post) models.PostDto {
	return models.PostDto{
		ID:        post.ID,
		Author:    post.Author.ToDto(),
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
		TimeAgo:   lib.TimeAgo(post.CreatedAt),
	}
}

func toPostDtos(posts []models.Post) []models.PostDto {
	dtos := make([]models.PostDto, 0, len(posts))
	for i := range posts {
		dtos = append(dtos, toPostDto(posts[i]))
	}
	return dtos
}
