package server

import (
	"yatube/internal/cache"
	"yatube/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// ClearPageCache handles POST /api/cache/clear. Feed writes never invalidate
// cached pages, so this is the only way to expose new posts before TTL expiry.
func (s *Server) ClearPageCache(c *fiber.Ctx) error {
	if err := cache.ClearPages(c.Context()); err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "page cache cleared")
	return c.JSON(fiber.Map{"status": "cleared"})
}
