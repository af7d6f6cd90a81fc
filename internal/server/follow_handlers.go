package server

import (
	"github.com/gofiber/fiber/v2"
)

// FollowAuthor handles POST /api/profiles/:username/follow
func (s *Server) FollowAuthor(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	state, err := s.followService.Follow(c.Context(), userID, c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(state)
}

// UnfollowAuthor handles DELETE /api/profiles/:username/follow
func (s *Server) UnfollowAuthor(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	state, err := s.followService.Unfollow(c.Context(), userID, c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(state)
}
