package service

import (
	"context"
	"time"

	"pollbox/internal/models"
	"pollbox/internal/repository"
)

const defaultAnalyticsLimit = 10

// AnalyticsService resolves the clock for the time-dependent queries and
// normalizes limits; everything else is the repository's business.
type AnalyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository, now func() time.Time) *AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
		now:           now,
	}
}

func (s *AnalyticsService) PollStatuses(ctx context.Context) ([]models.PollStatus, error) {
	return s.analyticsRepo.PollStatuses(ctx, s.now())
}

func (s *AnalyticsService) VotesPerPoll(ctx context.Context) ([]models.PollVoteCount, error) {
	return s.analyticsRepo.VotesPerPoll(ctx)
}

func (s *AnalyticsService) VotesPerOption(ctx context.Context) ([]models.OptionVoteCount, error) {
	return s.analyticsRepo.VotesPerOption(ctx)
}

func (s *AnalyticsService) UserParticipation(ctx context.Context, userID uint) ([]models.PollParticipation, error) {
	if userID == 0 {
		return nil, models.NewValidationError("User ID is required")
	}
	return s.analyticsRepo.UserParticipation(ctx, userID)
}

func (s *AnalyticsService) MostActiveUsers(ctx context.Context, limit int) ([]models.UserActivity, error) {
	return s.analyticsRepo.MostActiveUsers(ctx, clampLimit(limit))
}

func (s *AnalyticsService) TrendingPolls(ctx context.Context, limit int) ([]models.TrendingPoll, error) {
	return s.analyticsRepo.TrendingPolls(ctx, s.now(), clampLimit(limit))
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultAnalyticsLimit
	}
	if limit > 100 {
		return 100
	}
	return limit
}
