package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"pollbox/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPollRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPollRepository(db)
	ctx := context.Background()

	poll := &models.Poll{
		Title:     "Favorite language",
		CreatorID: 1,
		ExpiresAt: time.Now().Add(24 * time.Hour),
		Options: []models.PollOption{
			{Text: "Go"},
			{Text: "Rust"},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "polls"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "poll_options"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
	mock.ExpectCommit()

	err := repo.Create(ctx, poll)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPollRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPollRepository(db)
	ctx := context.Background()

	t.Run("Success with Options", func(t *testing.T) {
		pollRows := sqlmock.NewRows([]string{"id", "title", "creator_id", "is_deleted"}).
			AddRow(1, "Favorite language", 1, false)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "polls" WHERE is_deleted = $1 AND "polls"."id" = $2`)).
			WithArgs(false, 1, 1).
			WillReturnRows(pollRows)

		optionRows := sqlmock.NewRows([]string{"id", "poll_id", "text", "is_deleted"}).
			AddRow(1, 1, "Go", false).
			AddRow(2, 1, "Rust", false)
		mock.ExpectQuery(`SELECT \* FROM "poll_options"`).
			WillReturnRows(optionRows)

		poll, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		require.NotNil(t, poll)
		assert.Equal(t, "Favorite language", poll.Title)
		assert.Len(t, poll.Options, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "polls" WHERE is_deleted = $1 AND "polls"."id" = $2`)).
			WithArgs(false, 99, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		poll, err := repo.GetByID(ctx, 99)
		assert.Error(t, err)
		assert.Nil(t, poll)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPollRepository_SoftDelete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPollRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "polls" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.SoftDelete(ctx, 1)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already Deleted or Missing", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "polls" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.SoftDelete(ctx, 42)
		assert.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPollRepository_GetOption(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPollRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "poll_id", "text", "is_deleted"}).
			AddRow(3, 1, "Zig", false)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "poll_options" WHERE "poll_options"."id" = $1`)).
			WithArgs(3, 1).
			WillReturnRows(rows)

		option, err := repo.GetOption(ctx, 3)
		assert.NoError(t, err)
		require.NotNil(t, option)
		assert.Equal(t, uint(1), option.PollID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "poll_options" WHERE "poll_options"."id" = $1`)).
			WithArgs(99, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		option, err := repo.GetOption(ctx, 99)
		assert.Error(t, err)
		assert.Nil(t, option)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
