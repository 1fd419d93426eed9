package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/domain"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/event"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/repository"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/storage"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/views"
	apperrors "github.com/shubhajit-paul-web/youtube-fullstack/pkg/errors"
)

// maxDescriptionLength caps video descriptions.
const maxDescriptionLength = 500

// VideoService implements video publishing, listing, and playback accounting.
type VideoService struct {
	videoRepo repository.VideoRepository
	userRepo  repository.UserRepository
	storage   storage.Storage
	views     *views.Counter
	producer  *event.Producer
	logger    *slog.Logger
}

// NewVideoService creates a new video service. views and producer may be nil
// when Redis or Kafka are disabled.
func NewVideoService(
	videoRepo repository.VideoRepository,
	userRepo repository.UserRepository,
	store storage.Storage,
	viewCounter *views.Counter,
	producer *event.Producer,
	logger *slog.Logger,
) *VideoService {
	return &VideoService{
		videoRepo: videoRepo,
		userRepo:  userRepo,
		storage:   store,
		views:     viewCounter,
		producer:  producer,
		logger:    logger,
	}
}

// PublishInput holds the parameters for publishing a video.
type PublishInput struct {
	Title       string
	Description string
	Duration    float64
	VideoFile   *FileInput
	Thumbnail   *FileInput
}

// UpdateInput holds the optional fields of a video update. The video file
// itself is immutable.
type UpdateInput struct {
	Title       *string
	Description *string
	IsPublished *bool
	Thumbnail   *FileInput
}

// List returns the published videos of a channel. An unknown channel is a 404
// rather than an empty page.
func (s *VideoService) List(ctx context.Context, q repository.ChannelVideosQuery) ([]domain.Video, int, error) {
	if _, err := s.userRepo.GetByID(ctx, q.ChannelID); err != nil {
		return nil, 0, err
	}
	return s.videoRepo.ListChannel(ctx, q)
}

// Publish uploads the video file and thumbnail to object storage, then
// creates the row. A failed upload aborts creation; a failed insert removes
// the uploaded objects best-effort.
func (s *VideoService) Publish(ctx context.Context, ownerID string, input PublishInput) (*domain.Video, error) {
	if input.VideoFile == nil {
		return nil, apperrors.InvalidInput("video file is required")
	}
	if input.Thumbnail == nil {
		return nil, apperrors.InvalidInput("thumbnail is required")
	}
	if len(input.Description) > maxDescriptionLength {
		return nil, apperrors.InvalidInput("description must be at most 500 characters")
	}
	if input.Duration <= 0 {
		return nil, apperrors.InvalidInput("duration must be positive")
	}

	videoRes, err := uploadMedia(ctx, s.storage, "videos", "video/", input.VideoFile)
	if err != nil {
		return nil, err
	}

	thumbRes, err := uploadMedia(ctx, s.storage, "thumbnails", "image/", input.Thumbnail)
	if err != nil {
		cleanupObject(ctx, s.storage, s.logger, videoRes.URL)
		return nil, err
	}

	now := time.Now().UTC()
	video := &domain.Video{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		VideoURL:     videoRes.URL,
		ThumbnailURL: thumbRes.URL,
		Title:        input.Title,
		Description:  input.Description,
		Duration:     input.Duration,
		IsPublished:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.videoRepo.Create(ctx, video); err != nil {
		cleanupObject(ctx, s.storage, s.logger, videoRes.URL)
		cleanupObject(ctx, s.storage, s.logger, thumbRes.URL)
		return nil, err
	}

	if s.producer != nil {
		if err := s.producer.PublishVideoPublished(ctx, video); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish video.published event",
				slog.String("video_id", video.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	s.logger.InfoContext(ctx, "video published",
		slog.String("video_id", video.ID),
		slog.String("owner_id", ownerID),
	)

	return video, nil
}

// Get returns a video for playback. Unpublished videos are visible only to
// their owner. For authenticated viewers the view is counted at most once per
// dedupe window and the video lands in their watch history.
func (s *VideoService) Get(ctx context.Context, id, viewerID string) (*domain.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !video.IsPublished && video.OwnerID != viewerID {
		return nil, apperrors.NotFound("video", id)
	}

	if viewerID != "" {
		s.recordView(ctx, video, viewerID)
	}

	return video, nil
}

// recordView counts the view once per window and refreshes the watch-history
// entry. A Redis or history failure is logged and the playback proceeds.
func (s *VideoService) recordView(ctx context.Context, video *domain.Video, viewerID string) {
	if s.views != nil {
		first, err := s.views.MarkViewed(ctx, video.ID, viewerID)
		switch {
		case err != nil:
			s.logger.WarnContext(ctx, "view dedupe unavailable, skipping count",
				slog.String("video_id", video.ID),
				slog.String("error", err.Error()),
			)
		case first:
			if err := s.videoRepo.IncrementViews(ctx, video.ID); err != nil {
				s.logger.WarnContext(ctx, "failed to increment views",
					slog.String("video_id", video.ID),
					slog.String("error", err.Error()),
				)
			} else {
				video.Views++
			}
		}
	}

	if err := s.userRepo.AddWatchEntry(ctx, viewerID, video.ID); err != nil {
		s.logger.WarnContext(ctx, "failed to record watch history",
			slog.String("video_id", video.ID),
			slog.String("user_id", viewerID),
			slog.String("error", err.Error()),
		)
	}
}

// Update applies an ownership-scoped patch. A replacement thumbnail is
// uploaded first; when the update matches no row the new object is removed,
// and when it succeeds the old thumbnail is removed best-effort.
func (s *VideoService) Update(ctx context.Context, id, ownerID string, input UpdateInput) (*domain.Video, error) {
	if input.Description != nil && len(*input.Description) > maxDescriptionLength {
		return nil, apperrors.InvalidInput("description must be at most 500 characters")
	}

	patch := repository.VideoUpdate{
		Title:       input.Title,
		Description: input.Description,
		IsPublished: input.IsPublished,
	}

	var oldThumbURL string
	if input.Thumbnail != nil {
		// The old URL is needed for cleanup; ownership is still enforced
		// solely by the UPDATE's WHERE clause.
		current, err := s.videoRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		oldThumbURL = current.ThumbnailURL

		thumbRes, err := uploadMedia(ctx, s.storage, "thumbnails", "image/", input.Thumbnail)
		if err != nil {
			return nil, err
		}
		patch.ThumbnailURL = &thumbRes.URL
	}

	video, err := s.videoRepo.UpdateOwned(ctx, id, ownerID, patch)
	if err != nil {
		if patch.ThumbnailURL != nil {
			cleanupObject(ctx, s.storage, s.logger, *patch.ThumbnailURL)
		}
		return nil, err
	}

	if patch.ThumbnailURL != nil && oldThumbURL != "" {
		cleanupObject(ctx, s.storage, s.logger, oldThumbURL)
	}

	return video, nil
}

// Delete removes the row first, then cleans up object storage best-effort and
// publishes video.deleted. A row that never goes away never loses its media.
func (s *VideoService) Delete(ctx context.Context, id, ownerID string) error {
	video, err := s.videoRepo.DeleteOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}

	cleanupObject(ctx, s.storage, s.logger, video.VideoURL)
	cleanupObject(ctx, s.storage, s.logger, video.ThumbnailURL)

	if s.producer != nil {
		if err := s.producer.PublishVideoDeleted(ctx, video); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish video.deleted event",
				slog.String("video_id", video.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	return nil
}
