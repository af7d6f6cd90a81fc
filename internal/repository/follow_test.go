package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_CreateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := testContext()

	follower := createTestUser(t, db, "follower")
	author := createTestUser(t, db, "author")

	created, err := repo.Create(ctx, follower.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, created)

	// Second insert hits the unique pair index and reports no new edge.
	created, err = repo.Create(ctx, follower.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, created)

	exists, err := repo.Exists(ctx, follower.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	authorIDs, err := repo.AuthorIDs(ctx, follower.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{author.ID}, authorIDs)
}

func TestFollowRepository_EdgeIsDirected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := testContext()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	created, err := repo.Create(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, created)

	// The reverse direction is a distinct edge.
	created, err = repo.Create(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, created)

	exists, err := repo.Exists(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFollowRepository_DeleteAbsentEdgeIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := testContext()

	follower := createTestUser(t, db, "follower")
	author := createTestUser(t, db, "author")

	require.NoError(t, repo.Delete(ctx, follower.ID, author.ID))

	_, err := repo.Create(ctx, follower.ID, author.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, follower.ID, author.ID))

	exists, err := repo.Exists(ctx, follower.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting again after the edge is gone still succeeds.
	require.NoError(t, repo.Delete(ctx, follower.ID, author.ID))
}

func TestFollowRepository_AuthorIDsEmptyWithoutFollows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)

	user := createTestUser(t, db, "loner")

	authorIDs, err := repo.AuthorIDs(testContext(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, authorIDs)
}
