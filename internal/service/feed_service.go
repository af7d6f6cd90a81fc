// Package service contains the application's business logic.
package service

import (
	"context"

	"yatube/internal/cache"
	"yatube/internal/models"
	"yatube/internal/repository"
)

// PostsPerPage is the fixed feed page size.
const PostsPerPage = 10

// FeedVariant selects which slice of the post stream a feed shows.
type FeedVariant string

const (
	FeedAll       FeedVariant = "all"
	FeedByGroup   FeedVariant = "group"
	FeedByAuthor  FeedVariant = "author"
	FeedByFollows FeedVariant = "follows"
)

// FeedQuery describes a single feed page request.
type FeedQuery struct {
	Variant  FeedVariant
	Slug     string // group variant
	Username string // author variant
	ViewerID uint   // follows variant, and the following flag on author feeds
	Page     int
}

// FeedPage is one page of a feed plus its pagination envelope.
type FeedPage struct {
	Posts      []*models.Post `json:"posts"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	TotalCount int64          `json:"total_count"`
	HasNext    bool           `json:"has_next"`
	HasPrev    bool           `json:"has_prev"`

	// Author feed extras.
	Author    *models.User  `json:"author,omitempty"`
	Group     *models.Group `json:"group,omitempty"`
	Following bool          `json:"following,omitempty"`
}

// FeedService composes feed pages from the post stream.
type FeedService interface {
	GetFeed(ctx context.Context, q FeedQuery) (*FeedPage, error)
}

type feedService struct {
	posts   repository.PostRepository
	users   repository.UserRepository
	groups  repository.GroupRepository
	follows repository.FollowRepository
}

// NewFeedService creates a new FeedService.
func NewFeedService(posts repository.PostRepository, users repository.UserRepository, groups repository.GroupRepository, follows repository.FollowRepository) FeedService {
	return &feedService{posts: posts, users: users, groups: groups, follows: follows}
}

func (s *feedService) GetFeed(ctx context.Context, q FeedQuery) (*FeedPage, error) {
	switch q.Variant {
	case FeedAll:
		return s.indexFeed(ctx, q.Page)
	case FeedByGroup:
		return s.groupFeed(ctx, q.Slug, q.Page)
	case FeedByAuthor:
		return s.authorFeed(ctx, q.Username, q.ViewerID, q.Page)
	case FeedByFollows:
		return s.followFeed(ctx, q.ViewerID, q.Page)
	default:
		return nil, models.NewValidationError("unknown feed variant")
	}
}

// indexFeed serves the global feed through the page cache. Entries are shared
// by all viewers; writes never invalidate them, so a page may lag reality by
// up to cache.PageTTL.
func (s *feedService) indexFeed(ctx context.Context, page int) (*FeedPage, error) {
	var result FeedPage
	err := cache.CacheAside(ctx, cache.FeedPageKey(page), &result, cache.PageTTL, func() error {
		fp, err := s.paginate(ctx, page, s.posts.CountAll, func(limit, offset int) ([]*models.Post, error) {
			return s.posts.ListPage(ctx, limit, offset)
		})
		if err != nil {
			return err
		}
		result = *fp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *feedService) groupFeed(ctx context.Context, slug string, page int) (*FeedPage, error) {
	group, err := s.groups.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	fp, err := s.paginate(ctx, page,
		func(ctx context.Context) (int64, error) { return s.posts.CountByGroup(ctx, group.ID) },
		func(limit, offset int) ([]*models.Post, error) {
			return s.posts.ListByGroup(ctx, group.ID, limit, offset)
		})
	if err != nil {
		return nil, err
	}
	fp.Group = group
	return fp, nil
}

func (s *feedService) authorFeed(ctx context.Context, username string, viewerID uint, page int) (*FeedPage, error) {
	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	fp, err := s.paginate(ctx, page,
		func(ctx context.Context) (int64, error) { return s.posts.CountByAuthor(ctx, author.ID) },
		func(limit, offset int) ([]*models.Post, error) {
			return s.posts.ListByAuthor(ctx, author.ID, limit, offset)
		})
	if err != nil {
		return nil, err
	}
	fp.Author = author
	if viewerID != 0 && viewerID != author.ID {
		following, err := s.follows.Exists(ctx, viewerID, author.ID)
		if err != nil {
			return nil, err
		}
		fp.Following = following
	}
	return fp, nil
}

func (s *feedService) followFeed(ctx context.Context, viewerID uint, page int) (*FeedPage, error) {
	authorIDs, err := s.follows.AuthorIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	// Following nobody yields an empty feed, not an error.
	return s.paginate(ctx, page,
		func(ctx context.Context) (int64, error) { return s.posts.CountByAuthors(ctx, authorIDs) },
		func(limit, offset int) ([]*models.Post, error) {
			return s.posts.ListByAuthors(ctx, authorIDs, limit, offset)
		})
}

// paginate clamps the requested page into range and fills the pagination
// envelope. An empty result set still has exactly one (empty) page, and a
// request past the end returns the last page rather than an error.
func (s *feedService) paginate(ctx context.Context, page int, count func(context.Context) (int64, error), list func(limit, offset int) ([]*models.Post, error)) (*FeedPage, error) {
	total, err := count(ctx)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + PostsPerPage - 1) / PostsPerPage)
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	posts, err := list(PostsPerPage, (page-1)*PostsPerPage)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.Post{}
	}

	return &FeedPage{
		Posts:      posts,
		Page:       page,
		TotalPages: totalPages,
		TotalCount: total,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}, nil
}
