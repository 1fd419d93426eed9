package postgres

import (
	"context"
	"fmt"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/domain"
)

// LikeRepository implements repository.LikeRepository using PostgreSQL.
type LikeRepository struct {
	db DB
}

// NewLikeRepository creates a new PostgreSQL-backed like repository.
func NewLikeRepository(db DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Insert adds a like. ON CONFLICT DO NOTHING makes the toggle race-free: of
// two concurrent likes only one inserts, the other reports false.
func (r *LikeRepository) Insert(ctx context.Context, l *domain.Like) (bool, error) {
	query := `
		INSERT INTO likes (id, target_type, target_id, liked_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (target_type, target_id, liked_by) DO NOTHING`

	ct, err := r.db.Exec(ctx, query, l.ID, l.TargetType, l.TargetID, l.LikedBy, l.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("insert like: %w", err)
	}

	return ct.RowsAffected() > 0, nil
}

// Delete removes a like, reporting whether a row was deleted.
func (r *LikeRepository) Delete(ctx context.Context, targetType, targetID, likedBy string) (bool, error) {
	query := `DELETE FROM likes WHERE target_type = $1 AND target_id = $2 AND liked_by = $3`

	ct, err := r.db.Exec(ctx, query, targetType, targetID, likedBy)
	if err != nil {
		return false, fmt.Errorf("delete like: %w", err)
	}

	return ct.RowsAffected() > 0, nil
}

// ListLikedVideos returns the published videos a user has liked, most
// recently liked first.
func (r *LikeRepository) ListLikedVideos(ctx context.Context, userID string) ([]domain.VideoWithOwner, error) {
	query := `
		SELECT v.id, v.owner_id, v.video_url, v.thumbnail_url, v.title, v.description, v.duration, v.views, v.is_published, v.created_at, v.updated_at,
		       u.username, u.avatar_url
		FROM likes l
		JOIN videos v ON v.id = l.target_id
		JOIN users u ON u.id = v.owner_id
		WHERE l.liked_by = $1 AND l.target_type = 'video' AND v.is_published = TRUE
		ORDER BY l.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list liked videos: %w", err)
	}
	defer rows.Close()

	var videos []domain.VideoWithOwner
	for rows.Next() {
		var v domain.VideoWithOwner
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
			&v.OwnerUsername,
			&v.OwnerAvatarURL,
		); err != nil {
			return nil, fmt.Errorf("scan liked video: %w", err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate liked videos: %w", err)
	}

	return videos, nil
}
