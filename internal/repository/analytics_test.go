package repository

import (
	"context"
	"testing"
	"time"

	"pollbox/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsRepository_PollStatuses(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"poll_id", "title", "status"}).
		AddRow(1, "Favorite language", models.PollStatusActive).
		AddRow(2, "Best editor", models.PollStatusExpired)
	mock.ExpectQuery(`SELECT polls\.id AS poll_id, polls\.title, CASE WHEN polls\.expires_at >`).
		WillReturnRows(rows)

	statuses, err := repo.PollStatuses(ctx, now)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, models.PollStatusActive, statuses[0].Status)
	assert.Equal(t, models.PollStatusExpired, statuses[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_VotesPerPoll(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"poll_id", "title", "votes"}).
		AddRow(1, "Favorite language", 3).
		AddRow(2, "Best editor", 4).
		AddRow(3, "Tabs or spaces", 0)
	mock.ExpectQuery(`SELECT polls\.id AS poll_id, polls\.title, COUNT\(votes\.id\) AS votes FROM "polls" LEFT JOIN votes`).
		WillReturnRows(rows)

	counts, err := repo.VotesPerPoll(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 3)

	// Zero-vote polls stay in the result
	assert.Equal(t, int64(0), counts[2].Votes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_VotesPerOption(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"option_id", "poll_id", "text", "votes"}).
		AddRow(1, 1, "Go", 2).
		AddRow(2, 1, "Rust", 0)
	mock.ExpectQuery(`SELECT poll_options\.id AS option_id, poll_options\.poll_id, poll_options\.text, COUNT\(votes\.id\) AS votes FROM "poll_options" LEFT JOIN votes`).
		WillReturnRows(rows)

	counts, err := repo.VotesPerOption(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, int64(0), counts[1].Votes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_UserParticipation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"poll_id", "title"}).
		AddRow(1, "Favorite language").
		AddRow(2, "Best editor")
	mock.ExpectQuery(`SELECT DISTINCT polls\.id AS poll_id, polls\.title FROM "votes" INNER JOIN polls`).
		WithArgs(4, false).
		WillReturnRows(rows)

	polls, err := repo.UserParticipation(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, polls, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_MostActiveUsers(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"user_id", "username", "votes"}).
		AddRow(4, "diana", 2).
		AddRow(1, "alice", 1)
	mock.ExpectQuery(`SELECT users\.id AS user_id, users\.username, COUNT\(votes\.id\) AS votes FROM "users" INNER JOIN votes`).
		WillReturnRows(rows)

	users, err := repo.MostActiveUsers(ctx, 5)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.GreaterOrEqual(t, users[0].Votes, users[1].Votes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_TrendingPolls(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"poll_id", "title", "recent_votes"}).
		AddRow(2, "Best editor", 4).
		AddRow(1, "Favorite language", 1)
	mock.ExpectQuery(`SELECT polls\.id AS poll_id, polls\.title, COUNT\(votes\.id\) AS recent_votes FROM "polls" INNER JOIN votes`).
		WithArgs(now.Add(-TrendingWindow), now, false, 5).
		WillReturnRows(rows)

	polls, err := repo.TrendingPolls(ctx, now, 5)
	require.NoError(t, err)
	require.Len(t, polls, 2)
	assert.Equal(t, int64(4), polls[0].RecentVotes)
	assert.NoError(t, mock.ExpectationsWereMet())
}
