// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"
	"strings"
	"time"

	"pollbox/internal/models"
	"pollbox/internal/observability"
	"pollbox/internal/repository"
)

const (
	maxTitleLen       = 300
	maxDescriptionLen = 5000
	minPollOptions    = 2
	maxPollOptions    = 20
)

type PollService struct {
	pollRepo repository.PollRepository
	isAdmin  func(ctx context.Context, userID uint) (bool, error)
	now      func() time.Time
}

type CreatePollInput struct {
	CreatorID     uint
	Title         string
	Description   string
	ExpiresAt     time.Time
	IsMultiSelect bool
	Options       []string
}

type DeletePollInput struct {
	UserID uint
	PollID uint
}

func NewPollService(
	pollRepo repository.PollRepository,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
	now func() time.Time,
) *PollService {
	if now == nil {
		now = time.Now
	}
	return &PollService{
		pollRepo: pollRepo,
		isAdmin:  isAdmin,
		now:      now,
	}
}

func (s *PollService) CreatePoll(ctx context.Context, in CreatePollInput) (*models.Poll, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if len(in.Description) > maxDescriptionLen {
		return nil, models.NewValidationError("Description too long (max 5000 characters)")
	}
	if !in.ExpiresAt.After(s.now()) {
		return nil, models.NewValidationError("expires_at must be in the future")
	}

	var opts []string
	for _, o := range in.Options {
		if strings.TrimSpace(o) != "" {
			opts = append(opts, strings.TrimSpace(o))
		}
	}
	if len(opts) < minPollOptions {
		return nil, models.NewValidationError("Poll must have at least two non-empty options")
	}
	if len(opts) > maxPollOptions {
		return nil, models.NewValidationError("Poll cannot have more than 20 options")
	}

	poll := &models.Poll{
		Title:         strings.TrimSpace(in.Title),
		Description:   in.Description,
		CreatorID:     in.CreatorID,
		ExpiresAt:     in.ExpiresAt,
		IsMultiSelect: in.IsMultiSelect,
	}
	for _, o := range opts {
		poll.Options = append(poll.Options, models.PollOption{Text: o})
	}

	if err := s.pollRepo.Create(ctx, poll); err != nil {
		return nil, err
	}

	observability.PollsCreated.Inc()
	return s.pollRepo.GetByID(ctx, poll.ID)
}

func (s *PollService) GetPoll(ctx context.Context, id uint) (*models.Poll, error) {
	return s.pollRepo.GetByID(ctx, id)
}

func (s *PollService) ListPolls(ctx context.Context, limit, offset int) ([]models.Poll, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.pollRepo.List(ctx, limit, offset)
}

// DeletePoll soft-deletes a poll. Only the creator or an admin may delete;
// options and votes keep their rows and flags.
func (s *PollService) DeletePoll(ctx context.Context, in DeletePollInput) error {
	poll, err := s.pollRepo.GetByID(ctx, in.PollID)
	if err != nil {
		return err
	}

	if poll.CreatorID != in.UserID {
		if s.isAdmin == nil {
			return models.NewUnauthorizedError("You can only delete your own polls")
		}
		admin, err := s.isAdmin(ctx, in.UserID)
		if err != nil {
			return err
		}
		if !admin {
			return models.NewUnauthorizedError("You can only delete your own polls")
		}
	}

	return s.pollRepo.SoftDelete(ctx, in.PollID)
}
