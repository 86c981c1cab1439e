package repository

import (
	"context"
	"time"

	"pollbox/internal/cache"
	"pollbox/internal/models"
	"pollbox/internal/observability"

	"gorm.io/gorm"
)

// TrendingWindow is the trailing window counted by TrendingPolls.
const TrendingWindow = 24 * time.Hour

// AnalyticsRepository defines the fixed read queries over the poll schema.
// Time-dependent queries take an explicit now so callers control the clock.
type AnalyticsRepository interface {
	PollStatuses(ctx context.Context, now time.Time) ([]models.PollStatus, error)
	VotesPerPoll(ctx context.Context) ([]models.PollVoteCount, error)
	VotesPerOption(ctx context.Context) ([]models.OptionVoteCount, error)
	UserParticipation(ctx context.Context, userID uint) ([]models.PollParticipation, error)
	MostActiveUsers(ctx context.Context, limit int) ([]models.UserActivity, error)
	TrendingPolls(ctx context.Context, now time.Time, limit int) ([]models.TrendingPoll, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository returns a new AnalyticsRepository implementation.
func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// PollStatuses classifies each non-deleted poll as Active while expires_at is
// strictly after now, Expired otherwise.
func (r *analyticsRepository) PollStatuses(ctx context.Context, now time.Time) ([]models.PollStatus, error) {
	defer observability.TrackAnalyticsQuery("poll_statuses")()

	var statuses []models.PollStatus
	err := readDB(r.db).WithContext(ctx).
		Table("polls").
		Select("polls.id AS poll_id, polls.title, CASE WHEN polls.expires_at > ? THEN ? ELSE ? END AS status",
			now, models.PollStatusActive, models.PollStatusExpired).
		Where("polls.is_deleted = ?", false).
		Order("polls.id").
		Scan(&statuses).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return statuses, nil
}

// VotesPerPoll tallies votes per non-deleted poll. LEFT JOIN keeps polls with
// zero votes in the result.
func (r *analyticsRepository) VotesPerPoll(ctx context.Context) ([]models.PollVoteCount, error) {
	defer observability.TrackAnalyticsQuery("votes_per_poll")()

	var counts []models.PollVoteCount
	err := cache.Aside(ctx, cache.PollVotesKey, &counts, cache.AnalyticsTTL, func() error {
		return readDB(r.db).WithContext(ctx).
			Table("polls").
			Select("polls.id AS poll_id, polls.title, COUNT(votes.id) AS votes").
			Joins("LEFT JOIN votes ON votes.poll_id = polls.id").
			Where("polls.is_deleted = ?", false).
			Group("polls.id, polls.title").
			Order("polls.id").
			Scan(&counts).Error
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return counts, nil
}

// VotesPerOption tallies votes per non-deleted option. The filter is the
// option's own flag, so options of a soft-deleted poll keep their tallies.
func (r *analyticsRepository) VotesPerOption(ctx context.Context) ([]models.OptionVoteCount, error) {
	defer observability.TrackAnalyticsQuery("votes_per_option")()

	var counts []models.OptionVoteCount
	err := cache.Aside(ctx, cache.OptionVotesKey, &counts, cache.AnalyticsTTL, func() error {
		return readDB(r.db).WithContext(ctx).
			Table("poll_options").
			Select("poll_options.id AS option_id, poll_options.poll_id, poll_options.text, COUNT(votes.id) AS votes").
			Joins("LEFT JOIN votes ON votes.option_id = poll_options.id").
			Where("poll_options.is_deleted = ?", false).
			Group("poll_options.id, poll_options.poll_id, poll_options.text").
			Order("poll_options.poll_id, poll_options.id").
			Scan(&counts).Error
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return counts, nil
}

// UserParticipation lists the distinct non-deleted polls the user voted in.
// Multiple votes in one poll (multi-select) yield a single row.
func (r *analyticsRepository) UserParticipation(ctx context.Context, userID uint) ([]models.PollParticipation, error) {
	defer observability.TrackAnalyticsQuery("user_participation")()

	var polls []models.PollParticipation
	err := cache.Aside(ctx, cache.ParticipationKey(userID), &polls, cache.AnalyticsTTL, func() error {
		return readDB(r.db).WithContext(ctx).
			Table("votes").
			Select("DISTINCT polls.id AS poll_id, polls.title").
			Joins("INNER JOIN polls ON polls.id = votes.poll_id").
			Where("votes.user_id = ? AND polls.is_deleted = ?", userID, false).
			Order("polls.id").
			Scan(&polls).Error
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return polls, nil
}

// MostActiveUsers ranks users by total votes cast, most active first. INNER
// JOIN drops users with no votes. Ties break by user id for determinism.
func (r *analyticsRepository) MostActiveUsers(ctx context.Context, limit int) ([]models.UserActivity, error) {
	defer observability.TrackAnalyticsQuery("most_active_users")()

	var users []models.UserActivity
	err := cache.Aside(ctx, cache.MostActiveKey(limit), &users, cache.AnalyticsTTL, func() error {
		return readDB(r.db).WithContext(ctx).
			Table("users").
			Select("users.id AS user_id, users.username, COUNT(votes.id) AS votes").
			Joins("INNER JOIN votes ON votes.user_id = users.id").
			Group("users.id, users.username").
			Order("votes DESC, users.id").
			Limit(limit).
			Scan(&users).Error
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// TrendingPolls ranks non-deleted polls by votes cast in (now-24h, now].
// Polls without a recent vote are excluded by the INNER JOIN.
func (r *analyticsRepository) TrendingPolls(ctx context.Context, now time.Time, limit int) ([]models.TrendingPoll, error) {
	defer observability.TrackAnalyticsQuery("trending_polls")()

	since := now.Add(-TrendingWindow)

	var polls []models.TrendingPoll
	err := readDB(r.db).WithContext(ctx).
		Table("polls").
		Select("polls.id AS poll_id, polls.title, COUNT(votes.id) AS recent_votes").
		Joins("INNER JOIN votes ON votes.poll_id = polls.id AND votes.created_at > ? AND votes.created_at <= ?", since, now).
		Where("polls.is_deleted = ?", false).
		Group("polls.id, polls.title").
		Order("recent_votes DESC, polls.id").
		Limit(limit).
		Scan(&polls).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return polls, nil
}
