package server

import (
	"weblog/internal/models"
	"weblog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// StoreComment handles POST /post/:id with a `comment` form field.
func (s *Server) StoreComment(c *fiber.Ctx) error {
	postID, err := parseID(c, "id", "Post")
	if err != nil {
		return nil
	}

	var req struct {
		Body string `form:"comment" json:"comment"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		PostID: postID,
		Body:   req.Body,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}
