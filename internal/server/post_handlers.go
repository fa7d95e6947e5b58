package server

import (
	"weblog/internal/models"
	"weblog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListPosts handles GET /
func (s *Server) ListPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(posts)
}

// ShowPost handles GET /post/:id and returns the post with its comments.
func (s *Server) ShowPost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := parseID(c, "id", "Post")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(ctx, id)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	comments, err := s.commentService.ListComments(ctx, id)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	count, err := s.commentService.CountComments(ctx, id)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"post":           post,
		"comments":       comments,
		"comments_count": count,
	})
}

// NewPostForm handles GET /create. Rendering is owned by the frontend; the
// backend answers with an empty form descriptor.
func (s *Server) NewPostForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title":       "",
		"description": "",
	})
}

// StorePost handles POST /store. The acting user's identity arrives as the
// user_id form field; authentication itself lives with the external
// accounts collaborator.
func (s *Server) StorePost(c *fiber.Ctx) error {
	var req struct {
		Title       string `form:"title" json:"title"`
		Description string `form:"description" json:"description"`
		UserID      uint   `form:"user_id" json:"user_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}
