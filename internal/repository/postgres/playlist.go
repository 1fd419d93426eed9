package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/domain"
	apperrors "github.com/shubhajit-paul-web/youtube-fullstack/pkg/errors"
)

// PlaylistRepository implements repository.PlaylistRepository using PostgreSQL.
type PlaylistRepository struct {
	db DB
}

// NewPlaylistRepository creates a new PostgreSQL-backed playlist repository.
func NewPlaylistRepository(db DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

const playlistColumns = `id, owner_id, name, description, created_at, updated_at`

// Create inserts a new playlist.
func (r *PlaylistRepository) Create(ctx context.Context, p *domain.Playlist) error {
	query := `
		INSERT INTO playlists (id, owner_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query, p.ID, p.OwnerID, p.Name, p.Description, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NotFound("user", p.OwnerID)
		}
		return fmt.Errorf("insert playlist: %w", err)
	}

	return nil
}

// GetByID loads a playlist with its member videos ordered by when they were
// added.
func (r *PlaylistRepository) GetByID(ctx context.Context, id string) (*domain.PlaylistWithVideos, error) {
	query := `SELECT ` + playlistColumns + ` FROM playlists WHERE id = $1`

	var p domain.PlaylistWithVideos
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Description,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("playlist", id)
		}
		return nil, fmt.Errorf("scan playlist: %w", err)
	}

	videosQuery := `
		SELECT v.id, v.owner_id, v.video_url, v.thumbnail_url, v.title, v.description, v.duration, v.views, v.is_published, v.created_at, v.updated_at
		FROM playlist_videos pv
		JOIN videos v ON v.id = pv.video_id
		WHERE pv.playlist_id = $1
		ORDER BY pv.added_at ASC`

	rows, err := r.db.Query(ctx, videosQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list playlist videos: %w", err)
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
		); err != nil {
			return nil, fmt.Errorf("scan playlist video: %w", err)
		}
		p.Videos = append(p.Videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlist videos: %w", err)
	}

	return &p, nil
}

// ListByOwner returns a user's playlists, newest first.
func (r *PlaylistRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Playlist, error) {
	query := `SELECT ` + playlistColumns + ` FROM playlists WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	defer rows.Close()

	var playlists []domain.Playlist
	for rows.Next() {
		var p domain.Playlist
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan playlist: %w", err)
		}
		playlists = append(playlists, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlists: %w", err)
	}

	return playlists, nil
}

// UpdateOwned applies the patch in one statement conditioned on ownership.
func (r *PlaylistRepository) UpdateOwned(ctx context.Context, id, ownerID string, name, description *string) (*domain.Playlist, error) {
	query := `
		UPDATE playlists
		SET name = COALESCE($3, name),
		    description = COALESCE($4, description),
		    updated_at = $5
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + playlistColumns

	var p domain.Playlist
	err := r.db.QueryRow(ctx, query, id, ownerID, name, description, time.Now().UTC()).Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Description,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("playlist", id)
		}
		return nil, fmt.Errorf("update playlist: %w", err)
	}

	return &p, nil
}

// DeleteOwned removes the playlist in one statement conditioned on ownership.
// Membership rows go with it via ON DELETE CASCADE.
func (r *PlaylistRepository) DeleteOwned(ctx context.Context, id, ownerID string) error {
	query := `DELETE FROM playlists WHERE id = $1 AND owner_id = $2`

	ct, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("playlist", id)
	}

	return nil
}

// AddVideo inserts a membership row only when the requester owns the
// playlist. The ownership predicate lives inside the INSERT ... SELECT, so
// there is no separate read.
func (r *PlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID, ownerID string) error {
	query := `
		INSERT INTO playlist_videos (playlist_id, video_id, added_at)
		SELECT $1, $2, $3
		WHERE EXISTS (SELECT 1 FROM playlists WHERE id = $1 AND owner_id = $4)`

	ct, err := r.db.Exec(ctx, query, playlistID, videoID, time.Now().UTC(), ownerID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("playlist video", "video_id", videoID)
		}
		return fmt.Errorf("add playlist video: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("playlist", playlistID)
	}

	return nil
}

// RemoveVideo deletes a membership row only when the requester owns the
// playlist. A membership that is absent and a playlist owned by someone else
// report the same NotFound.
func (r *PlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID, ownerID string) error {
	query := `
		DELETE FROM playlist_videos pv
		USING playlists p
		WHERE pv.playlist_id = p.id AND pv.playlist_id = $1 AND pv.video_id = $2 AND p.owner_id = $3`

	ct, err := r.db.Exec(ctx, query, playlistID, videoID, ownerID)
	if err != nil {
		return fmt.Errorf("remove playlist video: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("playlist video", videoID)
	}

	return nil
}
