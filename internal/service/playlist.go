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

const (
	maxPlaylistNameLength        = 50
	maxPlaylistDescriptionLength = 250
)

// PlaylistService implements playlist management.
type PlaylistService struct {
	playlistRepo repository.PlaylistRepository
	videoRepo    repository.VideoRepository
	logger       *slog.Logger
}

// NewPlaylistService creates a new playlist service.
func NewPlaylistService(playlistRepo repository.PlaylistRepository, videoRepo repository.VideoRepository, logger *slog.Logger) *PlaylistService {
	return &PlaylistService{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		logger:       logger,
	}
}

// Create adds an empty playlist.
func (s *PlaylistService) Create(ctx context.Context, ownerID, name, description string) (*domain.Playlist, error) {
	if name == "" {
		return nil, apperrors.InvalidInput("name is required")
	}
	if len(name) > maxPlaylistNameLength {
		return nil, apperrors.InvalidInput("name must be at most 50 characters")
	}
	if len(description) > maxPlaylistDescriptionLength {
		return nil, apperrors.InvalidInput("description must be at most 250 characters")
	}

	now := time.Now().UTC()
	playlist := &domain.Playlist{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, err
	}

	return playlist, nil
}

// Get loads a playlist with its member videos.
func (s *PlaylistService) Get(ctx context.Context, id string) (*domain.PlaylistWithVideos, error) {
	return s.playlistRepo.GetByID(ctx, id)
}

// ListByOwner returns a user's playlists.
func (s *PlaylistService) ListByOwner(ctx context.Context, ownerID string) ([]domain.Playlist, error) {
	return s.playlistRepo.ListByOwner(ctx, ownerID)
}

// Update applies the patch, scoped to the owner.
func (s *PlaylistService) Update(ctx context.Context, id, ownerID string, name, description *string) (*domain.Playlist, error) {
	if name != nil && (*name == "" || len(*name) > maxPlaylistNameLength) {
		return nil, apperrors.InvalidInput("name must be 1 to 50 characters")
	}
	if description != nil && len(*description) > maxPlaylistDescriptionLength {
		return nil, apperrors.InvalidInput("description must be at most 250 characters")
	}
	return s.playlistRepo.UpdateOwned(ctx, id, ownerID, name, description)
}

// Delete removes the playlist, scoped to the owner.
func (s *PlaylistService) Delete(ctx context.Context, id, ownerID string) error {
	return s.playlistRepo.DeleteOwned(ctx, id, ownerID)
}

// AddVideo adds a published video to one of the requester's playlists.
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, videoID, ownerID string) error {
	exists, err := s.videoRepo.ExistsPublished(ctx, videoID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound("video", videoID)
	}

	return s.playlistRepo.AddVideo(ctx, playlistID, videoID, ownerID)
}

// RemoveVideo removes a video from one of the requester's playlists.
func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID, ownerID string) error {
	return s.playlistRepo.RemoveVideo(ctx, playlistID, videoID, ownerID)
}
