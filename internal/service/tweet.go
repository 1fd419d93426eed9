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

// TweetService implements short channel posts.
type TweetService struct {
	tweetRepo repository.TweetRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// NewTweetService creates a new tweet service.
func NewTweetService(tweetRepo repository.TweetRepository, userRepo repository.UserRepository, logger *slog.Logger) *TweetService {
	return &TweetService{
		tweetRepo: tweetRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// Create adds a tweet for the channel.
func (s *TweetService) Create(ctx context.Context, ownerID, content string) (*domain.Tweet, error) {
	if content == "" {
		return nil, apperrors.InvalidInput("content is required")
	}

	now := time.Now().UTC()
	tweet := &domain.Tweet{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, err
	}

	return tweet, nil
}

// ListByChannel returns a channel's tweets, newest first. An unknown channel
// is a 404 rather than an empty list.
func (s *TweetService) ListByChannel(ctx context.Context, channelID string) ([]domain.Tweet, error) {
	if _, err := s.userRepo.GetByID(ctx, channelID); err != nil {
		return nil, err
	}
	return s.tweetRepo.ListByOwner(ctx, channelID)
}

// Update replaces the content, scoped to the owner.
func (s *TweetService) Update(ctx context.Context, id, ownerID, content string) (*domain.Tweet, error) {
	if content == "" {
		return nil, apperrors.InvalidInput("content is required")
	}
	return s.tweetRepo.UpdateOwned(ctx, id, ownerID, content)
}

// Delete removes the tweet, scoped to the owner.
func (s *TweetService) Delete(ctx context.Context, id, ownerID string) error {
	return s.tweetRepo.DeleteOwned(ctx, id, ownerID)
}
