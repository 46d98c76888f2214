package repository

import (
	"context"
	"testing"

	"pulse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteRepository_Create_Duplicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewVoteRepository(db)

	user := createTestUser(t, db, "voter@example.com")
	post := createTestPost(t, db, user, "popular")

	require.NoError(t, repo.Create(context.Background(), user.ID, post.ID))

	err := repo.Create(context.Background(), user.ID, post.ID)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)

	var count int64
	require.NoError(t, db.Model(&models.Vote{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestVoteRepository_Create_DifferentVotersAllowed(t *testing.T) {
	db := newTestDB(t)
	repo := NewVoteRepository(db)

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	post := createTestPost(t, db, alice, "shared")

	require.NoError(t, repo.Create(context.Background(), alice.ID, post.ID))
	require.NoError(t, repo.Create(context.Background(), bob.ID, post.ID))
}

func TestVoteRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewVoteRepository(db)

	user := createTestUser(t, db, "voter@example.com")
	post := createTestPost(t, db, user, "fleeting")
	require.NoError(t, repo.Create(context.Background(), user.ID, post.ID))

	require.NoError(t, repo.Delete(context.Background(), user.ID, post.ID))

	var count int64
	require.NoError(t, db.Model(&models.Vote{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestVoteRepository_Delete_Missing(t *testing.T) {
	db := newTestDB(t)
	repo := NewVoteRepository(db)

	user := createTestUser(t, db, "voter@example.com")
	post := createTestPost(t, db, user, "untouched")

	err := repo.Delete(context.Background(), user.ID, post.ID)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
