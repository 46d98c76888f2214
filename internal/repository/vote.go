package repository

import (
	"context"

	"pulse/internal/models"
	"pulse/internal/observability"

	"gorm.io/gorm"
)

// VoteRepository defines persistence operations for votes.
type VoteRepository interface {
	Create(ctx context.Context, userID, postID uint) error
	Delete(ctx context.Context, userID, postID uint) error
}

type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository returns a new VoteRepository implementation.
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// Create inserts the vote and lets the (user_id, post_id) unique index settle
// races: when two concurrent adds collide, exactly one insert succeeds and the
// other surfaces as a CONFLICT domain error.
func (r *voteRepository) Create(ctx context.Context, userID, postID uint) error {
	defer observability.TrackQuery("create", "votes")()

	vote := &models.Vote{UserID: userID, PostID: postID}
	if err := r.db.WithContext(ctx).Create(vote).Error; err != nil {
		if isUniqueConstraintError(err) {
			observability.VoteConflicts.Inc()
			return models.NewConflictError("Vote already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *voteRepository) Delete(ctx context.Context, userID, postID uint) error {
	defer observability.TrackQuery("delete", "votes")()

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Vote{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Vote", postID)
	}
	return nil
}
