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
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/repository"
	apperrors "github.com/shubhajit-paul-web/youtube-fullstack/pkg/errors"
)

func newVideoTestFixture(t *testing.T) (*VideoRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := NewVideoRepository(mock)
	return repo, mock
}

func sampleVideo() *domain.Video {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Video{
		ID:           "v-1234",
		OwnerID:      "u-1234",
		VideoURL:     "https://media.example.com/videos/v-1234.mp4",
		ThumbnailURL: "https://media.example.com/thumbnails/v-1234.jpg",
		Title:        "Intro to chess openings",
		Description:  "The first ten moves explained",
		Duration:     812.4,
		Views:        0,
		IsPublished:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func videoTestColumns() []string {
	return []string{
		"id", "owner_id", "video_url", "thumbnail_url", "title", "description",
		"duration", "views", "is_published", "created_at", "updated_at",
	}
}

func videoRow(v *domain.Video) *pgxmock.Rows {
	return pgxmock.NewRows(videoTestColumns()).AddRow(
		v.ID, v.OwnerID, v.VideoURL, v.ThumbnailURL, v.Title, v.Description,
		v.Duration, v.Views, v.IsPublished, v.CreatedAt, v.UpdatedAt,
	)
}

// ---------------------------------------------------------------------------
// UpdateOwned
// ---------------------------------------------------------------------------

func TestVideoRepository_UpdateOwned_Success(t *testing.T) {
	repo, mock := newVideoTestFixture(t)
	defer mock.Close()

	v := sampleVideo()
	newTitle := "Intro to chess openings, part 2"
	v.Title = newTitle

	mock.ExpectQuery("UPDATE videos").
		WithArgs(v.ID, v.OwnerID, &newTitle, (*string)(nil), (*bool)(nil), (*string)(nil), pgxmock.AnyArg()).
		WillReturnRows(videoRow(v))

	got, err := repo.UpdateOwned(context.Background(), v.ID, v.OwnerID, repository.VideoUpdate{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, got.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_UpdateOwned_WrongOwner(t *testing.T) {
	repo, mock := newVideoTestFixture(t)
	defer mock.Close()

	newTitle := "hijacked"

	// An ownership mismatch matches zero rows, indistinguishable from a
	// missing video.
	mock.ExpectQuery("UPDATE videos").
		WithArgs("v-1234", "intruder", &newTitle, (*string)(nil), (*bool)(nil), (*string)(nil), pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.UpdateOwned(context.Background(), "v-1234", "intruder", repository.VideoUpdate{Title: &newTitle})
	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound), "expected ErrNotFound, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ---------------------------------------------------------------------------
// DeleteOwned
// ---------------------------------------------------------------------------

func TestVideoRepository_DeleteOwned_ReturnsRowForCleanup(t *testing.T) {
	repo, mock := newVideoTestFixture(t)
	defer mock.Close()

	v := sampleVideo()

	mock.ExpectQuery("DELETE FROM videos").
		WithArgs(v.ID, v.OwnerID).
		WillReturnRows(videoRow(v))

	got, err := repo.DeleteOwned(context.Background(), v.ID, v.OwnerID)
	require.NoError(t, err)
	assert.Equal(t, v.VideoURL, got.VideoURL)
	assert.Equal(t, v.ThumbnailURL, got.ThumbnailURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_DeleteOwned_NotFound(t *testing.T) {
	repo, mock := newVideoTestFixture(t)
	defer mock.Close()

	mock.ExpectQuery("DELETE FROM videos").
		WithArgs("missing-id", "u-1234").
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.DeleteOwned(context.Background(), "missing-id", "u-1234")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound), "expected ErrNotFound, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ---------------------------------------------------------------------------
// ListChannel
// ---------------------------------------------------------------------------

func TestVideoRepository_ListChannel_ReturnsTotal(t *testing.T) {
	repo, mock := newVideoTestFixture(t)
	defer mock.Close()

	v := sampleVideo()
	rows := pgxmock.NewRows(append(videoTestColumns(), "total_count")).AddRow(
		v.ID, v.OwnerID, v.VideoURL, v.ThumbnailURL, v.Title, v.Description,
		v.Duration, v.Views, v.IsPublished, v.CreatedAt, v.UpdatedAt, 37,
	)

	mock.ExpectQuery("SELECT .+ FROM videos").
		WithArgs(v.OwnerID, "chess", 0, 20).
		WillReturnRows(rows)

	videos, total, err := repo.ListChannel(context.Background(), repository.ChannelVideosQuery{
		ChannelID: v.OwnerID,
		Query:     "chess",
		SortBy:    "views",
		SortDesc:  true,
		Offset:    0,
		Limit:     20,
	})
	require.NoError(t, err)
	assert.Len(t, videos, 1)
	assert.Equal(t, 37, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ---------------------------------------------------------------------------
// IncrementViews
// ---------------------------------------------------------------------------

func TestVideoRepository_IncrementViews_Success(t *testing.T) {
	repo, mock := newVideoTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE videos SET views = views \\+ 1").
		WithArgs("v-1234").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.IncrementViews(context.Background(), "v-1234")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_IncrementViews_NotFound(t *testing.T) {
	repo, mock := newVideoTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE videos SET views = views \\+ 1").
		WithArgs("missing-id").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.IncrementViews(context.Background(), "missing-id")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound), "expected ErrNotFound, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
