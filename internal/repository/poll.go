package repository

import (
	"context"
	"errors"

	"pollbox/internal/cache"
	"pollbox/internal/models"

	"gorm.io/gorm"
)

// PollRepository defines persistence operations for polls and their options.
type PollRepository interface {
	Create(ctx context.Context, poll *models.Poll) error
	GetByID(ctx context.Context, id uint) (*models.Poll, error)
	List(ctx context.Context, limit, offset int) ([]models.Poll, error)
	Update(ctx context.Context, poll *models.Poll) error
	SoftDelete(ctx context.Context, id uint) error
	GetOption(ctx context.Context, optionID uint) (*models.PollOption, error)
}

type pollRepository struct {
	db *gorm.DB
}

// NewPollRepository returns a new PollRepository implementation.
func NewPollRepository(db *gorm.DB) PollRepository {
	return &pollRepository{db: db}
}

// Create inserts the poll and its options in a single transaction
// (GORM persists the Options association with the parent).
func (r *pollRepository) Create(ctx context.Context, poll *models.Poll) error {
	if err := r.db.WithContext(ctx).Create(poll).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePattern(ctx, "polls:page:*")
	return nil
}

func (r *pollRepository) GetByID(ctx context.Context, id uint) (*models.Poll, error) {
	var poll models.Poll
	key := cache.PollKey(id)

	err := cache.Aside(ctx, key, &poll, cache.PollTTL, func() error {
		if err := readDB(r.db).WithContext(ctx).
			Preload("Options", "is_deleted = ?", false).
			Where("is_deleted = ?", false).
			First(&poll, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Poll", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &poll, nil
}

func (r *pollRepository) List(ctx context.Context, limit, offset int) ([]models.Poll, error) {
	var polls []models.Poll
	key := cache.PollListKey(limit, offset)

	err := cache.Aside(ctx, key, &polls, cache.PollListTTL, func() error {
		if err := readDB(r.db).WithContext(ctx).
			Preload("Options", "is_deleted = ?", false).
			Where("is_deleted = ?", false).
			Order("created_at DESC, id DESC").
			Limit(limit).
			Offset(offset).
			Find(&polls).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return polls, nil
}

func (r *pollRepository) Update(ctx context.Context, poll *models.Poll) error {
	if err := r.db.WithContext(ctx).Save(poll).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePoll(ctx, poll.ID)
	return nil
}

// SoftDelete marks the poll deleted. Only the poll's own flag changes;
// options and votes keep their rows and flags.
func (r *pollRepository) SoftDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.Poll{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Poll", id)
	}
	cache.InvalidatePoll(ctx, id)
	cache.InvalidateAnalytics(ctx)
	return nil
}

// GetOption fetches a single option regardless of its poll's flag. The vote
// path needs the option row itself to check its own IsDeleted state and
// its PollID.
func (r *pollRepository) GetOption(ctx context.Context, optionID uint) (*models.PollOption, error) {
	var option models.PollOption
	if err := readDB(r.db).WithContext(ctx).First(&option, optionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("PollOption", optionID)
		}
		return nil, models.NewInternalError(err)
	}
	return &option, nil
}
