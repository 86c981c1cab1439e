package repository

import (
	"context"

	"pollbox/internal/cache"
	"pollbox/internal/models"

	"gorm.io/gorm"
)

// VoteRepository defines persistence operations for votes.
type VoteRepository interface {
	Create(ctx context.Context, vote *models.Vote) error
	CountByUserAndPoll(ctx context.Context, userID, pollID uint) (int64, error)
	HasVotedOption(ctx context.Context, userID, optionID uint) (bool, error)
	ListByUserAndPoll(ctx context.Context, userID, pollID uint) ([]models.Vote, error)
}

type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository returns a new VoteRepository implementation.
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) Create(ctx context.Context, vote *models.Vote) error {
	if err := r.db.WithContext(ctx).Create(vote).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.PollKey(vote.PollID))
	cache.InvalidateAnalytics(ctx)
	return nil
}

func (r *voteRepository) CountByUserAndPoll(ctx context.Context, userID, pollID uint) (int64, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.Vote{}).
		Where("user_id = ? AND poll_id = ?", userID, pollID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *voteRepository) HasVotedOption(ctx context.Context, userID, optionID uint) (bool, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.Vote{}).
		Where("user_id = ? AND option_id = ?", userID, optionID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *voteRepository) ListByUserAndPoll(ctx context.Context, userID, pollID uint) ([]models.Vote, error) {
	var votes []models.Vote
	if err := readDB(r.db).WithContext(ctx).
		Where("user_id = ? AND poll_id = ?", userID, pollID).
		Order("created_at ASC").
		Find(&votes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return votes, nil
}
