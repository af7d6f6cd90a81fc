package service

import (
	"context"
	"net/url"
	"strings"

	"yatube/internal/models"
	"yatube/internal/repository"
)

// PostService handles post creation, editing and deletion. Feed reads live in
// FeedService; writes here deliberately do not touch the page cache.
type PostService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
	isAdmin   func(ctx context.Context, userID uint) (bool, error)
}

type CreatePostInput struct {
	AuthorID  uint
	Text      string
	GroupSlug string
	ImageURL  string
}

type UpdatePostInput struct {
	UserID    uint
	PostID    uint
	Text      string
	GroupSlug *string // nil leaves the group untouched; empty string detaches
	ImageURL  string
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

func NewPostService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *PostService {
	return &PostService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		isAdmin:   isAdmin,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len([]rune(text)) > models.MaxPostTextLen {
		return nil, models.NewValidationError("Text too long (max 200 characters)")
	}
	if in.ImageURL != "" {
		if _, err := url.ParseRequestURI(in.ImageURL); err != nil {
			return nil, models.NewValidationError("image_url must be a valid URL")
		}
	}

	var groupID *uint
	if in.GroupSlug != "" {
		group, err := s.groupRepo.GetBySlug(ctx, in.GroupSlug)
		if err != nil {
			return nil, err
		}
		groupID = &group.ID
	}

	post := &models.Post{
		Text:     text,
		AuthorID: in.AuthorID,
		GroupID:  groupID,
		ImageURL: in.ImageURL,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != in.UserID {
		return nil, models.NewForbiddenError("You can only edit your own posts")
	}

	if in.Text != "" {
		text := strings.TrimSpace(in.Text)
		if len([]rune(text)) > models.MaxPostTextLen {
			return nil, models.NewValidationError("Text too long (max 200 characters)")
		}
		post.Text = text
	}
	if in.GroupSlug != nil {
		if *in.GroupSlug == "" {
			post.GroupID = nil
			post.Group = nil
		} else {
			group, err := s.groupRepo.GetBySlug(ctx, *in.GroupSlug)
			if err != nil {
				return nil, err
			}
			post.GroupID = &group.ID
			post.Group = group
		}
	}
	if in.ImageURL != "" {
		post.ImageURL = in.ImageURL
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}

	if post.AuthorID != in.UserID {
		if s.isAdmin == nil {
			return models.NewForbiddenError("You can only delete your own posts")
		}
		admin, err := s.isAdmin(ctx, in.UserID)
		if err != nil {
			return err
		}
		if !admin {
			return models.NewForbiddenError("You can only delete your own posts")
		}
	}

	return s.postRepo.Delete(ctx, in.PostID)
}
