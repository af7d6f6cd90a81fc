package service

import (
	"context"
	"log/slog"

	"yatube/internal/middleware"
	"yatube/internal/models"
	"yatube/internal/repository"
)

// FollowService mutates and queries the follow graph.
type FollowService interface {
	Follow(ctx context.Context, requesterID uint, username string) (*models.FollowState, error)
	Unfollow(ctx context.Context, requesterID uint, username string) (*models.FollowState, error)
	IsFollowing(ctx context.Context, requesterID uint, username string) (bool, error)
}

type followService struct {
	follows repository.FollowRepository
	users   repository.UserRepository
}

// NewFollowService creates a new FollowService.
func NewFollowService(follows repository.FollowRepository, users repository.UserRepository) FollowService {
	return &followService{follows: follows, users: users}
}

// Follow ensures an edge from requester to the named author exists. Repeat
// calls and concurrent duplicates are successful no-ops; following yourself
// never creates an edge.
func (s *followService) Follow(ctx context.Context, requesterID uint, username string) (*models.FollowState, error) {
	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if author.ID == requesterID {
		return &models.FollowState{NowFollowing: false}, nil
	}

	created, err := s.follows.Create(ctx, requesterID, author.ID)
	if err != nil {
		return nil, err
	}
	if created {
		middleware.Logger.InfoContext(ctx, "follow edge created",
			slog.Uint64("user_id", uint64(requesterID)),
			slog.Uint64("author_id", uint64(author.ID)),
		)
	}
	return &models.FollowState{NowFollowing: true}, nil
}

// Unfollow removes the edge if present; removing an absent edge succeeds.
func (s *followService) Unfollow(ctx context.Context, requesterID uint, username string) (*models.FollowState, error) {
	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := s.follows.Delete(ctx, requesterID, author.ID); err != nil {
		return nil, err
	}
	return &models.FollowState{NowFollowing: false}, nil
}

func (s *followService) IsFollowing(ctx context.Context, requesterID uint, username string) (bool, error) {
	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return s.follows.Exists(ctx, requesterID, author.ID)
}
