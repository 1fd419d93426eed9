package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/domain"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/repository"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/storage"
	apperrors "github.com/shubhajit-paul-web/youtube-fullstack/pkg/errors"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/pagination"
)

// UserService implements profile and channel operations.
type UserService struct {
	userRepo repository.UserRepository
	storage  storage.Storage
	logger   *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, store storage.Storage, logger *slog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		storage:  store,
		logger:   logger,
	}
}

// UpdateAccountInput holds the optional account fields a user may change.
// Username is immutable and deliberately absent.
type UpdateAccountInput struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// GetProfile returns the user's own profile.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateAccount applies the provided fields and persists the profile. A
// duplicate email surfaces as AlreadyExists from the repository.
func (s *UserService) UpdateAccount(ctx context.Context, userID string, input UpdateAccountInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateAvatar uploads a new avatar image and swaps it onto the profile. The
// replaced object is removed from storage best-effort once the row is saved;
// a failed save removes the new object instead so storage stays orphan-free.
func (s *UserService) UpdateAvatar(ctx context.Context, userID string, file *FileInput) (*domain.User, error) {
	if file == nil {
		return nil, apperrors.InvalidInput("avatar file is required")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	uploaded, err := uploadMedia(ctx, s.storage, "avatars", "image/", file)
	if err != nil {
		return nil, err
	}

	previous := user.AvatarURL
	user.AvatarURL = uploaded.URL
	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		cleanupObject(ctx, s.storage, s.logger, uploaded.URL)
		return nil, err
	}

	cleanupObject(ctx, s.storage, s.logger, previous)
	return user, nil
}

// UpdateCoverImage uploads a new cover image and swaps it onto the profile,
// with the same replace-then-clean-up discipline as UpdateAvatar.
func (s *UserService) UpdateCoverImage(ctx context.Context, userID string, file *FileInput) (*domain.User, error) {
	if file == nil {
		return nil, apperrors.InvalidInput("cover image file is required")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	uploaded, err := uploadMedia(ctx, s.storage, "covers", "image/", file)
	if err != nil {
		return nil, err
	}

	previous := user.CoverImageURL
	user.CoverImageURL = uploaded.URL
	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		cleanupObject(ctx, s.storage, s.logger, uploaded.URL)
		return nil, err
	}

	cleanupObject(ctx, s.storage, s.logger, previous)
	return user, nil
}

// GetChannelProfile returns the public channel page for a username. viewerID
// may be empty for anonymous requests; it only affects is_subscribed.
func (s *UserService) GetChannelProfile(ctx context.Context, username, viewerID string) (*domain.ChannelProfile, error) {
	return s.userRepo.GetChannelProfile(ctx, strings.ToLower(username), viewerID)
}

// GetWatchHistory returns the user's watched videos, most recent first.
func (s *UserService) GetWatchHistory(ctx context.Context, userID string, p pagination.Params) ([]domain.WatchEntry, int, error) {
	return s.userRepo.ListWatchHistory(ctx, userID, p.Offset, p.PerPage)
}
