package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/linknest/backend/src/lib"
	"github.com/linknest/backend/src/services"
)

type PostController struct {
	posts *services.PostService
}

func NewPostController(posts *services.PostService) *PostController {
	return &PostController{posts: posts}
}

// CreatePost creates a new post authored by the authenticated user.
func (ct *PostController) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	user := currentUser(c)

	post, err := ct.posts.CreatePost(c.Context(), user.ID, req.Content)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toPostDto(*post))
}

// GetRecentPosts returns the newest posts across all users.
func (ct *PostController) GetRecentPosts(c *fiber.Ctx) error {
	posts, err := ct.posts.GetRecentPosts(c.Context(), queryLimit(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(toPostDtos(posts))
}

// GetFeedPosts returns posts from the authenticated user's connections and
// themselves.
func (ct *PostController) GetFeedPosts(c *fiber.Ctx) error {
	user := currentUser(c)

	posts, err := ct.posts.GetConnectionFeed(c.Context(), user.ID, queryLimit(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(toPostDtos(posts))
}

// GetPostsByUser returns the newest posts by the user in the path.
func (ct *PostController) GetPostsByUser(c *fiber.Ctx) error {
	userID, err := paramUint(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	posts, err := ct.posts.GetPostsByUser(c.Context(), userID, queryLimit(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(toPostDtos(posts))
}
