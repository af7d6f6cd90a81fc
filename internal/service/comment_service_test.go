package service

import (
	"context"
	"strings"
	"testing"

	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_CreateComment(t *testing.T) {
	comments := noopCommentRepo()
	var created *models.Comment
	comments.createFn = func(_ context.Context, c *models.Comment) error {
		c.ID = 11
		created = c
		return nil
	}
	comments.getByIDFn = func(_ context.Context, _ uint) (*models.Comment, error) {
		return created, nil
	}

	svc := NewCommentService(comments, noopPostRepo(), nil)

	comment, err := svc.CreateComment(context.Background(), CreateCommentInput{
		UserID: 1,
		PostID: 5,
		Text:   "  nice post  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "nice post", comment.Text)
	assert.EqualValues(t, 5, comment.PostID)
}

func TestCommentService_CreateCommentUnknownPost(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", id)
	}

	svc := NewCommentService(noopCommentRepo(), posts, nil)

	_, err := svc.CreateComment(context.Background(), CreateCommentInput{UserID: 1, PostID: 404, Text: "hi"})
	assertNotFoundError(t, err)
}

func TestCommentService_CreateCommentValidation(t *testing.T) {
	svc := NewCommentService(noopCommentRepo(), noopPostRepo(), nil)
	ctx := context.Background()

	_, err := svc.CreateComment(ctx, CreateCommentInput{UserID: 1, PostID: 5, Text: ""})
	assertValidationError(t, err)

	_, err = svc.CreateComment(ctx, CreateCommentInput{UserID: 1, PostID: 5, Text: strings.Repeat("x", 2001)})
	assertValidationError(t, err)
}

func TestCommentService_UpdateCommentOnlyAuthor(t *testing.T) {
	comments := noopCommentRepo()
	comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, AuthorID: 1, Text: "original"}, nil
	}

	svc := NewCommentService(comments, noopPostRepo(), nil)

	_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{UserID: 2, CommentID: 11, Text: "edit"})
	assertForbiddenError(t, err)
}

func TestCommentService_DeleteCommentAdminOverride(t *testing.T) {
	comments := noopCommentRepo()
	comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, AuthorID: 1}, nil
	}

	svc := NewCommentService(comments, noopPostRepo(), func(_ context.Context, _ uint) (bool, error) { return true, nil })

	comment, err := svc.DeleteComment(context.Background(), DeleteCommentInput{UserID: 2, CommentID: 11})
	require.NoError(t, err)
	assert.EqualValues(t, 11, comment.ID)
}
