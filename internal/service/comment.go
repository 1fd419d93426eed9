package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/domain"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/repository"
	apperrors "github.com/shubhajit-paul-web/youtube-fullstack/pkg/errors"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/pagination"
)

// maxCommentLength caps comment content.
const maxCommentLength = 150

// CommentService implements commenting on videos and tweets.
type CommentService struct {
	commentRepo repository.CommentRepository
	videoRepo   repository.VideoRepository
	tweetRepo   repository.TweetRepository
	logger      *slog.Logger
}

// NewCommentService creates a new comment service.
func NewCommentService(
	commentRepo repository.CommentRepository,
	videoRepo repository.VideoRepository,
	tweetRepo repository.TweetRepository,
	logger *slog.Logger,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		tweetRepo:   tweetRepo,
		logger:      logger,
	}
}

// Create adds a comment after confirming the target exists.
func (s *CommentService) Create(ctx context.Context, ownerID, targetType, targetID, content string) (*domain.Comment, error) {
	if content == "" {
		return nil, apperrors.InvalidInput("content is required")
	}
	if len(content) > maxCommentLength {
		return nil, apperrors.InvalidInput("content must be at most 150 characters")
	}

	if err := s.checkTarget(ctx, targetType, targetID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		TargetType: targetType,
		TargetID:   targetID,
		Content:    content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// List returns comments on a video or tweet, newest first.
func (s *CommentService) List(ctx context.Context, targetType, targetID string, p pagination.Params) ([]domain.CommentWithOwner, int, error) {
	if targetType != domain.CommentTargetVideo && targetType != domain.CommentTargetTweet {
		return nil, 0, apperrors.InvalidInput("target type must be video or tweet")
	}
	return s.commentRepo.ListByTarget(ctx, targetType, targetID, p.Offset, p.PerPage)
}

// Update replaces the content, scoped to the owner.
func (s *CommentService) Update(ctx context.Context, id, ownerID, content string) (*domain.Comment, error) {
	if content == "" {
		return nil, apperrors.InvalidInput("content is required")
	}
	if len(content) > maxCommentLength {
		return nil, apperrors.InvalidInput("content must be at most 150 characters")
	}
	return s.commentRepo.UpdateOwned(ctx, id, ownerID, content)
}

// Delete removes the comment, scoped to the owner.
func (s *CommentService) Delete(ctx context.Context, id, ownerID string) error {
	return s.commentRepo.DeleteOwned(ctx, id, ownerID)
}

func (s *CommentService) checkTarget(ctx context.Context, targetType, targetID string) error {
	switch targetType {
	case domain.CommentTargetVideo:
		exists, err := s.videoRepo.ExistsPublished(ctx, targetID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NotFound("video", targetID)
		}
	case domain.CommentTargetTweet:
		exists, err := s.tweetRepo.Exists(ctx, targetID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NotFound("tweet", targetID)
		}
	default:
		return apperrors.InvalidInput("target type must be video or tweet")
	}
	return nil
}
