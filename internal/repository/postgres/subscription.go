package postgres

import (
	"context"
	"fmt"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/domain"
	apperrors "github.com/shubhajit-paul-web/youtube-fullstack/pkg/errors"
)

// SubscriptionRepository implements repository.SubscriptionRepository using
// PostgreSQL.
type SubscriptionRepository struct {
	db DB
}

// NewSubscriptionRepository creates a new PostgreSQL-backed subscription repository.
func NewSubscriptionRepository(db DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create inserts a subscription. The (subscriber_id, channel_id) pair is
// unique.
func (r *SubscriptionRepository) Create(ctx context.Context, s *domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, subscriber_id, channel_id, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, s.ID, s.SubscriberID, s.ChannelID, s.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("subscription", "channel_id", s.ChannelID)
		}
		if isForeignKeyViolation(err) {
			return apperrors.NotFound("channel", s.ChannelID)
		}
		return fmt.Errorf("insert subscription: %w", err)
	}

	return nil
}

// Delete removes the (subscriber, channel) pair.
func (r *SubscriptionRepository) Delete(ctx context.Context, subscriberID, channelID string) error {
	query := `DELETE FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2`

	ct, err := r.db.Exec(ctx, query, subscriberID, channelID)
	if err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("subscription", channelID)
	}

	return nil
}

// ListSubscribers returns the users subscribed to a channel, newest first.
func (r *SubscriptionRepository) ListSubscribers(ctx context.Context, channelID string) ([]domain.ChannelSummary, error) {
	query := `
		SELECT u.id, u.username, u.first_name, u.last_name, u.avatar_url
		FROM subscriptions s
		JOIN users u ON u.id = s.subscriber_id
		WHERE s.channel_id = $1
		ORDER BY s.created_at DESC`

	return r.listSummaries(ctx, query, channelID)
}

// ListSubscribedChannels returns the channels a user follows, newest first.
func (r *SubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.ChannelSummary, error) {
	query := `
		SELECT u.id, u.username, u.first_name, u.last_name, u.avatar_url
		FROM subscriptions s
		JOIN users u ON u.id = s.channel_id
		WHERE s.subscriber_id = $1
		ORDER BY s.created_at DESC`

	return r.listSummaries(ctx, query, subscriberID)
}

func (r *SubscriptionRepository) listSummaries(ctx context.Context, query, arg string) ([]domain.ChannelSummary, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	var summaries []domain.ChannelSummary
	for rows.Next() {
		var s domain.ChannelSummary
		if err := rows.Scan(&s.ID, &s.Username, &s.FirstName, &s.LastName, &s.AvatarURL); err != nil {
			return nil, fmt.Errorf("scan channel summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscriptions: %w", err)
	}

	return summaries, nil
}
