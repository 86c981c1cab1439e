package server

import (
	"context"
	"time"

	"pollbox/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.User), args.Error(1)
}

// MockPollRepository is a mock of the PollRepository interface
type MockPollRepository struct {
	mock.Mock
}

func (m *MockPollRepository) Create(ctx context.Context, poll *models.Poll) error {
	args := m.Called(ctx, poll)
	return args.Error(0)
}

func (m *MockPollRepository) GetByID(ctx context.Context, id uint) (*models.Poll, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Poll), args.Error(1)
}

func (m *MockPollRepository) List(ctx context.Context, limit, offset int) ([]models.Poll, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.Poll), args.Error(1)
}

func (m *MockPollRepository) Update(ctx context.Context, poll *models.Poll) error {
	args := m.Called(ctx, poll)
	return args.Error(0)
}

func (m *MockPollRepository) SoftDelete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPollRepository) GetOption(ctx context.Context, optionID uint) (*models.PollOption, error) {
	args := m.Called(ctx, optionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PollOption), args.Error(1)
}

// MockVoteRepository is a mock of the VoteRepository interface
type MockVoteRepository struct {
	mock.Mock
}

func (m *MockVoteRepository) Create(ctx context.Context, vote *models.Vote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

func (m *MockVoteRepository) CountByUserAndPoll(ctx context.Context, userID, pollID uint) (int64, error) {
	args := m.Called(ctx, userID, pollID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVoteRepository) HasVotedOption(ctx context.Context, userID, optionID uint) (bool, error) {
	args := m.Called(ctx, userID, optionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVoteRepository) ListByUserAndPoll(ctx context.Context, userID, pollID uint) ([]models.Vote, error) {
	args := m.Called(ctx, userID, pollID)
	return args.Get(0).([]models.Vote), args.Error(1)
}

// MockAnalyticsRepository is a mock of the AnalyticsRepository interface
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) PollStatuses(ctx context.Context, now time.Time) ([]models.PollStatus, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]models.PollStatus), args.Error(1)
}

func (m *MockAnalyticsRepository) VotesPerPoll(ctx context.Context) ([]models.PollVoteCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.PollVoteCount), args.Error(1)
}

func (m *MockAnalyticsRepository) VotesPerOption(ctx context.Context) ([]models.OptionVoteCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.OptionVoteCount), args.Error(1)
}

func (m *MockAnalyticsRepository) UserParticipation(ctx context.Context, userID uint) ([]models.PollParticipation, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.PollParticipation), args.Error(1)
}

func (m *MockAnalyticsRepository) MostActiveUsers(ctx context.Context, limit int) ([]models.UserActivity, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.UserActivity), args.Error(1)
}

func (m *MockAnalyticsRepository) TrendingPolls(ctx context.Context, now time.Time, limit int) ([]models.TrendingPoll, error) {
	args := m.Called(ctx, now, limit)
	return args.Get(0).([]models.TrendingPoll), args.Error(1)
}
