package server

import (
	"testing"

	"yatube/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowAndUnfollow(t *testing.T) {
	_, app, db := newTestServer(t)

	token := signupUser(t, app, "follower")
	author := &models.User{Username: "author", Email: "author@example.com", Password: "x"}
	require.NoError(t, db.Create(author).Error)

	var state struct {
		NowFollowing bool `json:"now_following"`
	}

	// Following twice leaves a single edge.
	for i := 0; i < 2; i++ {
		resp := doJSON(t, app, fiber.MethodPost, "/api/profiles/author/follow", nil, token)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		decodeBody(t, resp, &state)
		assert.True(t, state.NowFollowing)
	}

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Unfollowing twice succeeds both times.
	for i := 0; i < 2; i++ {
		resp := doJSON(t, app, fiber.MethodDelete, "/api/profiles/author/follow", nil, token)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		decodeBody(t, resp, &state)
		assert.False(t, state.NowFollowing)
	}

	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSelfFollowNeverCreatesEdge(t *testing.T) {
	_, app, db := newTestServer(t)

	token := signupUser(t, app, "narcissus")

	resp := doJSON(t, app, fiber.MethodPost, "/api/profiles/narcissus/follow", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var state struct {
		NowFollowing bool `json:"now_following"`
	}
	decodeBody(t, resp, &state)
	assert.False(t, state.NowFollowing)

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFollowUnknownAuthor(t *testing.T) {
	_, app, _ := newTestServer(t)

	token := signupUser(t, app, "follower")

	resp := doJSON(t, app, fiber.MethodPost, "/api/profiles/ghost/follow", nil, token)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
