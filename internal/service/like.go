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

// LikeService implements like toggling on videos, comments, and tweets.
type LikeService struct {
	likeRepo    repository.LikeRepository
	videoRepo   repository.VideoRepository
	commentRepo repository.CommentRepository
	tweetRepo   repository.TweetRepository
	logger      *slog.Logger
}

// NewLikeService creates a new like service.
func NewLikeService(
	likeRepo repository.LikeRepository,
	videoRepo repository.VideoRepository,
	commentRepo repository.CommentRepository,
	tweetRepo repository.TweetRepository,
	logger *slog.Logger,
) *LikeService {
	return &LikeService{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
		logger:      logger,
	}
}

// Toggle likes the target, or removes the like when one already exists. It
// reports whether the target is liked after the call. The insert's conflict
// clause makes the toggle safe under concurrent requests.
func (s *LikeService) Toggle(ctx context.Context, userID, targetType, targetID string) (bool, error) {
	if err := s.checkTarget(ctx, targetType, targetID); err != nil {
		return false, err
	}

	like := &domain.Like{
		ID:         uuid.New().String(),
		TargetType: targetType,
		TargetID:   targetID,
		LikedBy:    userID,
		CreatedAt:  time.Now().UTC(),
	}

	inserted, err := s.likeRepo.Insert(ctx, like)
	if err != nil {
		return false, err
	}
	if inserted {
		return true, nil
	}

	if _, err := s.likeRepo.Delete(ctx, targetType, targetID, userID); err != nil {
		return false, err
	}
	return false, nil
}

// ListLikedVideos returns the published videos the user has liked.
func (s *LikeService) ListLikedVideos(ctx context.Context, userID string) ([]domain.VideoWithOwner, error) {
	return s.likeRepo.ListLikedVideos(ctx, userID)
}

func (s *LikeService) checkTarget(ctx context.Context, targetType, targetID string) error {
	switch targetType {
	case domain.LikeTargetVideo:
		exists, err := s.videoRepo.ExistsPublished(ctx, targetID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NotFound("video", targetID)
		}
	case domain.LikeTargetComment:
		exists, err := s.commentRepo.Exists(ctx, targetID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NotFound("comment", targetID)
		}
	case domain.LikeTargetTweet:
		exists, err := s.tweetRepo.Exists(ctx, targetID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NotFound("tweet", targetID)
		}
	default:
		return apperrors.InvalidInput("target type must be video, comment, or tweet")
	}
	return nil
}
