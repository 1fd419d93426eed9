package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/shubhajit-paul-web/youtube-fullstack/pkg/errors"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/domain"
)

// UserRepository implements repository.UserRepository using PostgreSQL.
type UserRepository struct {
	db DB
}

// NewUserRepository creates a new PostgreSQL-backed user repository.
func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, email, password_hash, first_name, last_name, avatar_url, cover_image_url, refresh_token, created_at, updated_at`

// Create inserts a new user.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, first_name, last_name, avatar_url, cover_image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, query,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		u.AvatarURL,
		u.CoverImageURL,
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("user", "username or email", u.Username)
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by their ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(ctx, query, id)
}

// GetByUsername retrieves a user by their username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.scanUser(ctx, query, username)
}

// GetByIdentifier retrieves a user by username or email.
func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $1`
	return r.scanUser(ctx, query, identifier)
}

// UpdateProfile persists the mutable profile fields. Username is immutable
// and deliberately absent from the SET list.
func (r *UserRepository) UpdateProfile(ctx context.Context, u *domain.User) error {
	u.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE users
		SET email = $1, first_name = $2, last_name = $3, avatar_url = $4, cover_image_url = $5, updated_at = $6
		WHERE id = $7`

	ct, err := r.db.Exec(ctx, query,
		u.Email,
		u.FirstName,
		u.LastName,
		u.AvatarURL,
		u.CoverImageURL,
		u.UpdatedAt,
		u.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("user", "email", u.Email)
		}
		return fmt.Errorf("update user: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("user", u.ID)
	}

	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *UserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`

	ct, err := r.db.Exec(ctx, query, passwordHash, time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("user", userID)
	}

	return nil
}

// SetRefreshToken overwrites the user's refresh-token slot. Any previously
// stored token stops being usable the moment this commits.
func (r *UserRepository) SetRefreshToken(ctx context.Context, userID, token string) error {
	query := `UPDATE users SET refresh_token = $1 WHERE id = $2`

	ct, err := r.db.Exec(ctx, query, token, userID)
	if err != nil {
		return fmt.Errorf("set refresh token: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("user", userID)
	}

	return nil
}

// ClearRefreshToken empties the slot. The statement matches the user row
// whether or not a token is stored, so a repeated clear is a no-op.
func (r *UserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	query := `UPDATE users SET refresh_token = NULL WHERE id = $1`

	ct, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("clear refresh token: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("user", userID)
	}

	return nil
}

// GetChannelProfile loads the channel page aggregate for a username.
func (r *UserRepository) GetChannelProfile(ctx context.Context, username, viewerID string) (*domain.ChannelProfile, error) {
	query := `
		SELECT u.id, u.username, u.first_name, u.last_name, u.avatar_url, u.cover_image_url, u.created_at,
		       (SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.id) AS subscriber_count,
		       (SELECT COUNT(*) FROM subscriptions s WHERE s.subscriber_id = u.id) AS subscribed_to_count,
		       EXISTS(SELECT 1 FROM subscriptions s WHERE s.channel_id = u.id AND s.subscriber_id::text = $2) AS is_subscribed
		FROM users u
		WHERE u.username = $1`

	var p domain.ChannelProfile
	err := r.db.QueryRow(ctx, query, username, viewerID).Scan(
		&p.ID,
		&p.Username,
		&p.FirstName,
		&p.LastName,
		&p.AvatarURL,
		&p.CoverImageURL,
		&p.CreatedAt,
		&p.SubscriberCount,
		&p.SubscribedTo,
		&p.IsSubscribed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("channel", username)
		}
		return nil, fmt.Errorf("scan channel profile: %w", err)
	}

	return &p, nil
}

// AddWatchEntry records a video in the user's watch history, moving it to the
// top if it was already there.
func (r *UserRepository) AddWatchEntry(ctx context.Context, userID, videoID string) error {
	query := `
		INSERT INTO watch_history (user_id, video_id, watched_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, video_id) DO UPDATE SET watched_at = EXCLUDED.watched_at`

	if _, err := r.db.Exec(ctx, query, userID, videoID, time.Now().UTC()); err != nil {
		return fmt.Errorf("add watch entry: %w", err)
	}
	return nil
}

// ListWatchHistory returns the user's watched videos, most recent first.
func (r *UserRepository) ListWatchHistory(ctx context.Context, userID string, offset, limit int) ([]domain.WatchEntry, int, error) {
	query := `
		SELECT v.id, v.owner_id, v.video_url, v.thumbnail_url, v.title, v.description, v.duration, v.views, v.is_published, v.created_at, v.updated_at,
		       wh.watched_at, COUNT(*) OVER() AS total_count
		FROM watch_history wh
		JOIN videos v ON v.id = wh.video_id
		WHERE wh.user_id = $1 AND v.is_published = TRUE
		ORDER BY wh.watched_at DESC
		OFFSET $2 LIMIT $3`

	rows, err := r.db.Query(ctx, query, userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list watch history: %w", err)
	}
	defer rows.Close()

	var entries []domain.WatchEntry
	var total int
	for rows.Next() {
		var e domain.WatchEntry
		if err := rows.Scan(
			&e.Video.ID,
			&e.Video.OwnerID,
			&e.Video.VideoURL,
			&e.Video.ThumbnailURL,
			&e.Video.Title,
			&e.Video.Description,
			&e.Video.Duration,
			&e.Video.Views,
			&e.Video.IsPublished,
			&e.Video.CreatedAt,
			&e.Video.UpdatedAt,
			&e.WatchedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan watch entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate watch history: %w", err)
	}

	return entries, total, nil
}

// scanUser executes a query expected to return a single user row.
func (r *UserRepository) scanUser(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var u domain.User

	err := r.db.QueryRow(ctx, query, args...).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.AvatarURL,
		&u.CoverImageURL,
		&u.RefreshToken,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}
