package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"pollbox/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pollRepoStub is a stub for repository.PollRepository.
type pollRepoStub struct {
	createFn     func(context.Context, *models.Poll) error
	getByIDFn    func(context.Context, uint) (*models.Poll, error)
	listFn       func(context.Context, int, int) ([]models.Poll, error)
	updateFn     func(context.Context, *models.Poll) error
	softDeleteFn func(context.Context, uint) error
	getOptionFn  func(context.Context, uint) (*models.PollOption, error)
}

func (s *pollRepoStub) Create(ctx context.Context, poll *models.Poll) error {
	return s.createFn(ctx, poll)
}
func (s *pollRepoStub) GetByID(ctx context.Context, id uint) (*models.Poll, error) {
	return s.getByIDFn(ctx, id)
}
func (s *pollRepoStub) List(ctx context.Context, limit, offset int) ([]models.Poll, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *pollRepoStub) Update(ctx context.Context, poll *models.Poll) error {
	return s.updateFn(ctx, poll)
}
func (s *pollRepoStub) SoftDelete(ctx context.Context, id uint) error {
	return s.softDeleteFn(ctx, id)
}
func (s *pollRepoStub) GetOption(ctx context.Context, optionID uint) (*models.PollOption, error) {
	return s.getOptionFn(ctx, optionID)
}

func noopPollRepo() *pollRepoStub {
	return &pollRepoStub{
		createFn:     func(_ context.Context, _ *models.Poll) error { return nil },
		getByIDFn:    func(_ context.Context, _ uint) (*models.Poll, error) { return &models.Poll{}, nil },
		listFn:       func(_ context.Context, _, _ int) ([]models.Poll, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.Poll) error { return nil },
		softDeleteFn: func(_ context.Context, _ uint) error { return nil },
		getOptionFn:  func(_ context.Context, _ uint) (*models.PollOption, error) { return &models.PollOption{}, nil },
	}
}

// voteRepoStub is a stub for repository.VoteRepository.
type voteRepoStub struct {
	createFn             func(context.Context, *models.Vote) error
	countByUserAndPollFn func(context.Context, uint, uint) (int64, error)
	hasVotedOptionFn     func(context.Context, uint, uint) (bool, error)
	listByUserAndPollFn  func(context.Context, uint, uint) ([]models.Vote, error)
}

func (s *voteRepoStub) Create(ctx context.Context, vote *models.Vote) error {
	return s.createFn(ctx, vote)
}
func (s *voteRepoStub) CountByUserAndPoll(ctx context.Context, userID, pollID uint) (int64, error) {
	return s.countByUserAndPollFn(ctx, userID, pollID)
}
func (s *voteRepoStub) HasVotedOption(ctx context.Context, userID, optionID uint) (bool, error) {
	return s.hasVotedOptionFn(ctx, userID, optionID)
}
func (s *voteRepoStub) ListByUserAndPoll(ctx context.Context, userID, pollID uint) ([]models.Vote, error) {
	return s.listByUserAndPollFn(ctx, userID, pollID)
}

func noopVoteRepo() *voteRepoStub {
	return &voteRepoStub{
		createFn:             func(_ context.Context, _ *models.Vote) error { return nil },
		countByUserAndPollFn: func(_ context.Context, _, _ uint) (int64, error) { return 0, nil },
		hasVotedOptionFn:     func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		listByUserAndPollFn:  func(_ context.Context, _, _ uint) ([]models.Vote, error) { return nil, nil },
	}
}

// analyticsRepoStub is a stub for repository.AnalyticsRepository.
type analyticsRepoStub struct {
	pollStatusesFn      func(context.Context, time.Time) ([]models.PollStatus, error)
	votesPerPollFn      func(context.Context) ([]models.PollVoteCount, error)
	votesPerOptionFn    func(context.Context) ([]models.OptionVoteCount, error)
	userParticipationFn func(context.Context, uint) ([]models.PollParticipation, error)
	mostActiveUsersFn   func(context.Context, int) ([]models.UserActivity, error)
	trendingPollsFn     func(context.Context, time.Time, int) ([]models.TrendingPoll, error)
}

func (s *analyticsRepoStub) PollStatuses(ctx context.Context, now time.Time) ([]models.PollStatus, error) {
	return s.pollStatusesFn(ctx, now)
}
func (s *analyticsRepoStub) VotesPerPoll(ctx context.Context) ([]models.PollVoteCount, error) {
	return s.votesPerPollFn(ctx)
}
func (s *analyticsRepoStub) VotesPerOption(ctx context.Context) ([]models.OptionVoteCount, error) {
	return s.votesPerOptionFn(ctx)
}
func (s *analyticsRepoStub) UserParticipation(ctx context.Context, userID uint) ([]models.PollParticipation, error) {
	return s.userParticipationFn(ctx, userID)
}
func (s *analyticsRepoStub) MostActiveUsers(ctx context.Context, limit int) ([]models.UserActivity, error) {
	return s.mostActiveUsersFn(ctx, limit)
}
func (s *analyticsRepoStub) TrendingPolls(ctx context.Context, now time.Time, limit int) ([]models.TrendingPoll, error) {
	return s.trendingPollsFn(ctx, now, limit)
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

// assertConflictError asserts that err is an AppError with code CONFLICT.
func assertConflictError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

// assertUnauthorizedError asserts that err is an AppError with code UNAUTHORIZED.
func assertUnauthorizedError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}
