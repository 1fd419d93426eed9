package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/domain"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/repository"
	apperrors "github.com/shubhajit-paul-web/youtube-fullstack/pkg/errors"
)

// SubscriptionService implements channel subscriptions.
type SubscriptionService struct {
	subRepo repository.SubscriptionRepository
	logger  *slog.Logger
}

// NewSubscriptionService creates a new subscription service.
func NewSubscriptionService(subRepo repository.SubscriptionRepository, logger *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		subRepo: subRepo,
		logger:  logger,
	}
}

// Subscribe follows a channel. Self-subscriptions are rejected; a duplicate
// surfaces as AlreadyExists and an unknown channel as NotFound from the
// repository.
func (s *SubscriptionService) Subscribe(ctx context.Context, subscriberID, channelID string) (*domain.Subscription, error) {
	if subscriberID == channelID {
		return nil, apperrors.InvalidInput("cannot subscribe to your own channel")
	}

	sub := &domain.Subscription{
		ID:           uuid.New().String(),
		SubscriberID: subscriberID,
		ChannelID:    channelID,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

// Unsubscribe removes the subscription. Not being subscribed is a 404.
func (s *SubscriptionService) Unsubscribe(ctx context.Context, subscriberID, channelID string) error {
	return s.subRepo.Delete(ctx, subscriberID, channelID)
}

// ListSubscribers returns the users following a channel.
func (s *SubscriptionService) ListSubscribers(ctx context.Context, channelID string) ([]domain.ChannelSummary, error) {
	return s.subRepo.ListSubscribers(ctx, channelID)
}

// ListSubscribedChannels returns the channels a user follows.
func (s *SubscriptionService) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.ChannelSummary, error) {
	return s.subRepo.ListSubscribedChannels(ctx, subscriberID)
}
