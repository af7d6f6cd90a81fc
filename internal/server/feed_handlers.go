package server

import (
	"yatube/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetIndexFeed handles GET /api/posts?page=N
func (s *Server) GetIndexFeed(c *fiber.Ctx) error {
	feed, err := s.feedService.GetFeed(c.Context(), service.FeedQuery{
		Variant: service.FeedAll,
		Page:    parsePage(c),
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feed)
}

// GetGroupFeed handles GET /api/groups/:slug/posts?page=N
func (s *Server) GetGroupFeed(c *fiber.Ctx) error {
	feed, err := s.feedService.GetFeed(c.Context(), service.FeedQuery{
		Variant: service.FeedByGroup,
		Slug:    c.Params("slug"),
		Page:    parsePage(c),
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feed)
}

// GetAuthorFeed handles GET /api/profiles/:username?page=N
func (s *Server) GetAuthorFeed(c *fiber.Ctx) error {
	viewerID, _ := s.optionalUserID(c)

	feed, err := s.feedService.GetFeed(c.Context(), service.FeedQuery{
		Variant:  service.FeedByAuthor,
		Username: c.Params("username"),
		ViewerID: viewerID,
		Page:     parsePage(c),
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feed)
}

// GetFollowFeed handles GET /api/follow/posts?page=N
func (s *Server) GetFollowFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	feed, err := s.feedService.GetFeed(c.Context(), service.FeedQuery{
		Variant:  service.FeedByFollows,
		ViewerID: userID,
		Page:     parsePage(c),
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feed)
}
