package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/domain"
	apperrors "github.com/shubhajit-paul-web/youtube-fullstack/pkg/errors"
)

func newTweetTestFixture(t *testing.T) (*TweetRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := NewTweetRepository(mock)
	return repo, mock
}

func sampleTweet() *domain.Tweet {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Tweet{
		ID:        "t-1234",
		OwnerID:   "u-1234",
		Content:   "uploading a new video tonight",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func tweetRow(tw *domain.Tweet) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "owner_id", "content", "created_at", "updated_at"}).
		AddRow(tw.ID, tw.OwnerID, tw.Content, tw.CreatedAt, tw.UpdatedAt)
}

func TestTweetRepository_Create(t *testing.T) {
	repo, mock := newTweetTestFixture(t)
	defer mock.Close()

	tw := sampleTweet()

	mock.ExpectExec("INSERT INTO tweets").
		WithArgs(tw.ID, tw.OwnerID, tw.Content, tw.CreatedAt, tw.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), tw))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTweetRepository_ListByOwner(t *testing.T) {
	repo, mock := newTweetTestFixture(t)
	defer mock.Close()

	tw := sampleTweet()

	mock.ExpectQuery("SELECT (.+) FROM tweets").
		WithArgs(tw.OwnerID).
		WillReturnRows(tweetRow(tw))

	tweets, err := repo.ListByOwner(context.Background(), tw.OwnerID)
	require.NoError(t, err)
	require.Len(t, tweets, 1)
	assert.Equal(t, tw.Content, tweets[0].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTweetRepository_UpdateOwned_Success(t *testing.T) {
	repo, mock := newTweetTestFixture(t)
	defer mock.Close()

	tw := sampleTweet()
	tw.Content = "edited"

	mock.ExpectQuery("UPDATE tweets").
		WithArgs(tw.ID, tw.OwnerID, "edited", pgxmock.AnyArg()).
		WillReturnRows(tweetRow(tw))

	got, err := repo.UpdateOwned(context.Background(), tw.ID, tw.OwnerID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTweetRepository_UpdateOwned_WrongOwner(t *testing.T) {
	repo, mock := newTweetTestFixture(t)
	defer mock.Close()

	mock.ExpectQuery("UPDATE tweets").
		WithArgs("t-1234", "intruder", "hijacked", pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.UpdateOwned(context.Background(), "t-1234", "intruder", "hijacked")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTweetRepository_DeleteOwned_WrongOwner(t *testing.T) {
	repo, mock := newTweetTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM tweets").
		WithArgs("t-1234", "intruder").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.DeleteOwned(context.Background(), "t-1234", "intruder")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
