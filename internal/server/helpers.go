package server

import (
	"errors"

	"yatube/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parsePage extracts the ?page= query parameter. Out-of-range values are left
// to the feed service, which clamps them instead of erroring.
func parsePage(c *fiber.Ctx) int {
	return c.QueryInt("page", 1)
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+param))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// respondServiceError writes err with the HTTP status implied by its AppError
// code. Unknown error types become 500s.
func respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	switch appErr.Code {
	case "NOT_FOUND":
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	case "VALIDATION_ERROR":
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	case "UNAUTHORIZED":
		return models.RespondWithError(c, fiber.StatusUnauthorized, err)
	case "FORBIDDEN":
		return models.RespondWithError(c, fiber.StatusForbidden, err)
	case "SERVICE_UNAVAILABLE":
		return models.RespondWithError(c, fiber.StatusServiceUnavailable, err)
	default:
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
}
