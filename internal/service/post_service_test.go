package service

import (
	"context"
	"strings"
	"testing"

	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_CreatePost(t *testing.T) {
	posts := noopPostRepo()
	var created *models.Post
	posts.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = 7
		created = p
		return nil
	}
	posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return created, nil
	}

	svc := NewPostService(posts, noopGroupRepo(), nil)

	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		AuthorID:  1,
		Text:      "hello world",
		GroupSlug: "cats",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello world", post.Text)
	require.NotNil(t, post.GroupID)
	assert.EqualValues(t, 1, *post.GroupID)
}

func TestPostService_CreatePostValidation(t *testing.T) {
	svc := NewPostService(noopPostRepo(), noopGroupRepo(), nil)
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, CreatePostInput{AuthorID: 1, Text: ""})
	assertValidationError(t, err)

	_, err = svc.CreatePost(ctx, CreatePostInput{AuthorID: 1, Text: "   "})
	assertValidationError(t, err)

	_, err = svc.CreatePost(ctx, CreatePostInput{AuthorID: 1, Text: strings.Repeat("a", 201)})
	assertValidationError(t, err)

	// Exactly at the limit is fine.
	_, err = svc.CreatePost(ctx, CreatePostInput{AuthorID: 1, Text: strings.Repeat("a", 200)})
	require.NoError(t, err)
}

func TestPostService_CreatePostUnknownGroup(t *testing.T) {
	groups := noopGroupRepo()
	groups.getBySlugFn = func(_ context.Context, slug string) (*models.Group, error) {
		return nil, models.NewNotFoundError("Group", slug)
	}

	svc := NewPostService(noopPostRepo(), groups, nil)

	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		AuthorID:  1,
		Text:      "text",
		GroupSlug: "missing",
	})
	assertNotFoundError(t, err)
}

func TestPostService_UpdatePostOnlyAuthor(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, AuthorID: 1, Text: "original"}, nil
	}

	svc := NewPostService(posts, noopGroupRepo(), nil)

	_, err := svc.UpdatePost(context.Background(), UpdatePostInput{
		UserID: 99,
		PostID: 5,
		Text:   "hijacked",
	})
	assertForbiddenError(t, err)
}

func TestPostService_UpdatePostDetachGroup(t *testing.T) {
	groupID := uint(3)
	posts := noopPostRepo()
	var saved *models.Post
	posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		if saved != nil {
			return saved, nil
		}
		return &models.Post{ID: id, AuthorID: 1, Text: "text", GroupID: &groupID}, nil
	}
	posts.updateFn = func(_ context.Context, p *models.Post) error {
		saved = p
		return nil
	}

	svc := NewPostService(posts, noopGroupRepo(), nil)

	empty := ""
	post, err := svc.UpdatePost(context.Background(), UpdatePostInput{
		UserID:    1,
		PostID:    5,
		GroupSlug: &empty,
	})
	require.NoError(t, err)
	assert.Nil(t, post.GroupID)
}

func TestPostService_DeletePostOwnershipAndAdmin(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, AuthorID: 1}, nil
	}

	// Non-author without admin override.
	svc := NewPostService(posts, noopGroupRepo(), nil)
	assertForbiddenError(t, svc.DeletePost(context.Background(), DeletePostInput{UserID: 2, PostID: 5}))

	// Non-author who is an admin.
	svc = NewPostService(posts, noopGroupRepo(), func(_ context.Context, _ uint) (bool, error) { return true, nil })
	require.NoError(t, svc.DeletePost(context.Background(), DeletePostInput{UserID: 2, PostID: 5}))

	// Author always can.
	svc = NewPostService(posts, noopGroupRepo(), func(_ context.Context, _ uint) (bool, error) { return false, nil })
	require.NoError(t, svc.DeletePost(context.Background(), DeletePostInput{UserID: 1, PostID: 5}))
}
