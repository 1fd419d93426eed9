package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/domain"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/repository"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/database"
	apperrors "github.com/shubhajit-paul-web/youtube-fullstack/pkg/errors"
)

// VideoRepository implements repository.VideoRepository using PostgreSQL.
type VideoRepository struct {
	db DB
}

// NewVideoRepository creates a new PostgreSQL-backed video repository.
func NewVideoRepository(db DB) *VideoRepository {
	return &VideoRepository{db: db}
}

const videoColumns = `id, owner_id, video_url, thumbnail_url, title, description, duration, views, is_published, created_at, updated_at`

// sortColumns whitelists the sortable columns for channel listings.
var sortColumns = map[string]string{
	"created_at": "created_at",
	"views":      "views",
	"title":      "title",
	"duration":   "duration",
}

// Create inserts a new video.
func (r *VideoRepository) Create(ctx context.Context, v *domain.Video) error {
	query := `
		INSERT INTO videos (id, owner_id, video_url, thumbnail_url, title, description, duration, views, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		v.ID,
		v.OwnerID,
		v.VideoURL,
		v.ThumbnailURL,
		v.Title,
		v.Description,
		v.Duration,
		v.Views,
		v.IsPublished,
		v.CreatedAt,
		v.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NotFound("user", v.OwnerID)
		}
		return fmt.Errorf("insert video: %w", err)
	}

	return nil
}

// GetByID retrieves a video by its ID regardless of publish state; visibility
// is the service's call.
func (r *VideoRepository) GetByID(ctx context.Context, id string) (*domain.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`

	var v domain.Video
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID,
		&v.OwnerID,
		&v.VideoURL,
		&v.ThumbnailURL,
		&v.Title,
		&v.Description,
		&v.Duration,
		&v.Views,
		&v.IsPublished,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("video", id)
		}
		return nil, fmt.Errorf("scan video: %w", err)
	}

	return &v, nil
}

// ListChannel returns the published videos of a channel with the total count.
func (r *VideoRepository) ListChannel(ctx context.Context, q repository.ChannelVideosQuery) (videos []domain.Video, total int, err error) {
	sortCol, ok := sortColumns[q.SortBy]
	if !ok {
		sortCol = "created_at"
	}
	direction := "ASC"
	if q.SortDesc {
		direction = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT `+videoColumns+`, COUNT(*) OVER() AS total_count
		FROM videos
		WHERE owner_id = $1 AND is_published = TRUE AND ($2 = '' OR title ILIKE '%%' || $2 || '%%')
		ORDER BY %s %s
		OFFSET $3 LIMIT $4`, sortCol, direction)

	ctx, end := database.TraceQuery(ctx, "ListChannelVideos", query)
	defer func() { end(err) }()

	rows, err := r.db.Query(ctx, query, q.ChannelID, q.Query, q.Offset, q.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list channel videos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v domain.Video
		if err := rows.Scan(
			&v.ID,
			&v.OwnerID,
			&v.VideoURL,
			&v.ThumbnailURL,
			&v.Title,
			&v.Description,
			&v.Duration,
			&v.Views,
			&v.IsPublished,
			&v.CreatedAt,
			&v.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan video: %w", err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate videos: %w", err)
	}

	return videos, total, nil
}

// UpdateOwned applies the patch in one statement conditioned on ownership.
// COALESCE keeps the current value for nil patch fields.
func (r *VideoRepository) UpdateOwned(ctx context.Context, id, ownerID string, patch repository.VideoUpdate) (*domain.Video, error) {
	query := `
		UPDATE videos
		SET title = COALESCE($3, title),
		    description = COALESCE($4, description),
		    is_published = COALESCE($5, is_published),
		    thumbnail_url = COALESCE($6, thumbnail_url),
		    updated_at = $7
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + videoColumns

	var v domain.Video
	err := r.db.QueryRow(ctx, query,
		id,
		ownerID,
		patch.Title,
		patch.Description,
		patch.IsPublished,
		patch.ThumbnailURL,
		time.Now().UTC(),
	).Scan(
		&v.ID,
		&v.OwnerID,
		&v.VideoURL,
		&v.ThumbnailURL,
		&v.Title,
		&v.Description,
		&v.Duration,
		&v.Views,
		&v.IsPublished,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("video", id)
		}
		return nil, fmt.Errorf("update video: %w", err)
	}

	return &v, nil
}

// DeleteOwned removes the video in one statement conditioned on ownership and
// returns the deleted row for storage cleanup.
func (r *VideoRepository) DeleteOwned(ctx context.Context, id, ownerID string) (*domain.Video, error) {
	query := `DELETE FROM videos WHERE id = $1 AND owner_id = $2 RETURNING ` + videoColumns

	var v domain.Video
	err := r.db.QueryRow(ctx, query, id, ownerID).Scan(
		&v.ID,
		&v.OwnerID,
		&v.VideoURL,
		&v.ThumbnailURL,
		&v.Title,
		&v.Description,
		&v.Duration,
		&v.Views,
		&v.IsPublished,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("video", id)
		}
		return nil, fmt.Errorf("delete video: %w", err)
	}

	return &v, nil
}

// IncrementViews bumps the view counter by one.
func (r *VideoRepository) IncrementViews(ctx context.Context, id string) error {
	query := `UPDATE videos SET views = views + 1 WHERE id = $1`

	ct, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("video", id)
	}

	return nil
}

// ExistsPublished reports whether a published video with this id exists.
func (r *VideoRepository) ExistsPublished(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM videos WHERE id = $1 AND is_published = TRUE)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check video exists: %w", err)
	}
	return exists, nil
}
