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

// CommentRepository implements repository.CommentRepository using PostgreSQL.
type CommentRepository struct {
	db DB
}

// NewCommentRepository creates a new PostgreSQL-backed comment repository.
func NewCommentRepository(db DB) *CommentRepository {
	return &CommentRepository{db: db}
}

const commentColumns = `id, owner_id, target_type, target_id, content, created_at, updated_at`

// Create inserts a new comment.
func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `
		INSERT INTO comments (id, owner_id, target_type, target_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		c.ID,
		c.OwnerID,
		c.TargetType,
		c.TargetID,
		c.Content,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	return nil
}

// ListByTarget returns comments on a video or tweet, newest first, with the
// author's public fields.
func (r *CommentRepository) ListByTarget(ctx context.Context, targetType, targetID string, offset, limit int) ([]domain.CommentWithOwner, int, error) {
	query := `
		SELECT c.id, c.owner_id, c.target_type, c.target_id, c.content, c.created_at, c.updated_at,
		       u.username, u.avatar_url, COUNT(*) OVER() AS total_count
		FROM comments c
		JOIN users u ON u.id = c.owner_id
		WHERE c.target_type = $1 AND c.target_id = $2
		ORDER BY c.created_at DESC
		OFFSET $3 LIMIT $4`

	rows, err := r.db.Query(ctx, query, targetType, targetID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.CommentWithOwner
	var total int
	for rows.Next() {
		var c domain.CommentWithOwner
		if err := rows.Scan(
			&c.ID,
			&c.OwnerID,
			&c.TargetType,
			&c.TargetID,
			&c.Content,
			&c.CreatedAt,
			&c.UpdatedAt,
			&c.OwnerUsername,
			&c.OwnerAvatarURL,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate comments: %w", err)
	}

	return comments, total, nil
}

// UpdateOwned replaces the content in one statement conditioned on ownership.
func (r *CommentRepository) UpdateOwned(ctx context.Context, id, ownerID, content string) (*domain.Comment, error) {
	query := `
		UPDATE comments
		SET content = $3, updated_at = $4
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + commentColumns

	var c domain.Comment
	err := r.db.QueryRow(ctx, query, id, ownerID, content, time.Now().UTC()).Scan(
		&c.ID,
		&c.OwnerID,
		&c.TargetType,
		&c.TargetID,
		&c.Content,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("comment", id)
		}
		return nil, fmt.Errorf("update comment: %w", err)
	}

	return &c, nil
}

// DeleteOwned removes the comment in one statement conditioned on ownership.
func (r *CommentRepository) DeleteOwned(ctx context.Context, id, ownerID string) error {
	query := `DELETE FROM comments WHERE id = $1 AND owner_id = $2`

	ct, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("comment", id)
	}

	return nil
}

// Exists reports whether a comment with this id exists.
func (r *CommentRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check comment exists: %w", err)
	}
	return exists, nil
}
