package server

import (
	"errors"

	"weblog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter as a positive uint. A value that
// cannot name an existing row (non-numeric, zero, negative) gets the same
// 404 as an unknown row; the helper writes the response and returns
// errResponseWritten, so callers should check: if err != nil { return nil }.
func parseID(c *fiber.Ctx, param, resource string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError(resource, c.Params(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// statusForError maps AppError codes onto HTTP statuses: validation and
// foreign-key failures are 422, missing rows 404, everything else 500.
func statusForError(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeValidation, models.CodeForeignKey:
			return fiber.StatusUnprocessableEntity
		case models.CodeNotFound:
			return fiber.StatusNotFound
		}
	}
	return fiber.StatusInternalServerError
}
