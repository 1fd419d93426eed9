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

// TweetRepository implements repository.TweetRepository using PostgreSQL.
type TweetRepository struct {
	db DB
}

// NewTweetRepository creates a new PostgreSQL-backed tweet repository.
func NewTweetRepository(db DB) *TweetRepository {
	return &TweetRepository{db: db}
}

const tweetColumns = `id, owner_id, content, created_at, updated_at`

// Create inserts a new tweet.
func (r *TweetRepository) Create(ctx context.Context, t *domain.Tweet) error {
	query := `
		INSERT INTO tweets (id, owner_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, t.ID, t.OwnerID, t.Content, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NotFound("user", t.OwnerID)
		}
		return fmt.Errorf("insert tweet: %w", err)
	}

	return nil
}

// ListByOwner returns a channel's tweets, newest first.
func (r *TweetRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Tweet, error) {
	query := `SELECT ` + tweetColumns + ` FROM tweets WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tweets: %w", err)
	}
	defer rows.Close()

	var tweets []domain.Tweet
	for rows.Next() {
		var t domain.Tweet
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tweet: %w", err)
		}
		tweets = append(tweets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tweets: %w", err)
	}

	return tweets, nil
}

// UpdateOwned replaces the content in one statement conditioned on ownership.
func (r *TweetRepository) UpdateOwned(ctx context.Context, id, ownerID, content string) (*domain.Tweet, error) {
	query := `
		UPDATE tweets
		SET content = $3, updated_at = $4
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + tweetColumns

	var t domain.Tweet
	err := r.db.QueryRow(ctx, query, id, ownerID, content, time.Now().UTC()).Scan(
		&t.ID,
		&t.OwnerID,
		&t.Content,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("tweet", id)
		}
		return nil, fmt.Errorf("update tweet: %w", err)
	}

	return &t, nil
}

// DeleteOwned removes the tweet in one statement conditioned on ownership.
func (r *TweetRepository) DeleteOwned(ctx context.Context, id, ownerID string) error {
	query := `DELETE FROM tweets WHERE id = $1 AND owner_id = $2`

	ct, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete tweet: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("tweet", id)
	}

	return nil
}

// Exists reports whether a tweet with this id exists.
func (r *TweetRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM tweets WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check tweet exists: %w", err)
	}
	return exists, nil
}
