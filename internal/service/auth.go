package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/auth"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/domain"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/event"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/repository"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/storage"
	apperrors "github.com/shubhajit-paul-web/youtube-fullstack/pkg/errors"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/middleware"
)

// bcryptCost is the cost factor for bcrypt password hashing.
const bcryptCost = 12

// minPasswordLength is the minimum password length required.
const minPasswordLength = 8

// AuthService implements registration, login, and the refresh-token lifecycle.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *auth.JWTManager
	storage    storage.Storage
	producer   *event.Producer
	logger     *slog.Logger
}

// NewAuthService creates a new auth service. producer may be nil when event
// publishing is disabled.
func NewAuthService(
	userRepo repository.UserRepository,
	jwtManager *auth.JWTManager,
	store storage.Storage,
	producer *event.Producer,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		storage:    store,
		producer:   producer,
		logger:     logger,
	}
}

// RegisterInput holds the parameters for registering a new user.
type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	FirstName  string
	LastName   string
	Avatar     *FileInput
	CoverImage *FileInput
}

// Register uploads the profile images, creates the user row, and issues the
// first token pair. Images go to object storage before the insert; when the
// insert fails they are removed best-effort.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, *domain.TokenPair, error) {
	if len(input.Password) < minPasswordLength {
		return nil, nil, apperrors.InvalidInput("password must be at least 8 characters")
	}
	if input.Avatar == nil {
		return nil, nil, apperrors.InvalidInput("avatar is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, nil, apperrors.Internal(err)
	}

	avatarRes, err := uploadMedia(ctx, s.storage, "avatars", "image/", input.Avatar)
	if err != nil {
		return nil, nil, err
	}

	var coverURL string
	if input.CoverImage != nil {
		coverRes, err := uploadMedia(ctx, s.storage, "covers", "image/", input.CoverImage)
		if err != nil {
			cleanupObject(ctx, s.storage, s.logger, avatarRes.URL)
			return nil, nil, err
		}
		coverURL = coverRes.URL
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:            uuid.New().String(),
		Username:      strings.ToLower(strings.TrimSpace(input.Username)),
		Email:         strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash:  string(hash),
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		AvatarURL:     avatarRes.URL,
		CoverImageURL: coverURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		cleanupObject(ctx, s.storage, s.logger, avatarRes.URL)
		cleanupObject(ctx, s.storage, s.logger, coverURL)
		return nil, nil, err
	}

	pair, err := s.issuePair(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	if s.producer != nil {
		if err := s.producer.PublishUserRegistered(ctx, user); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish user.registered event",
				slog.String("user_id", user.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, pair, nil
}

// Login verifies the credentials and issues a fresh token pair, overwriting
// any refresh token a prior session stored.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*domain.User, *domain.TokenPair, error) {
	user, err := s.userRepo.GetByIdentifier(ctx, strings.ToLower(strings.TrimSpace(identifier)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.Unauthorized("invalid credentials")
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, apperrors.Unauthorized("invalid credentials")
	}

	pair, err := s.issuePair(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// Rotate exchanges a presented refresh token for a fresh pair. The token must
// verify and match the stored slot byte for byte; anything else is treated as
// expired or already used. Two concurrent rotations race benignly: the last
// writer wins the slot and the loser's pair dies on its next rotation.
func (s *AuthService) Rotate(ctx context.Context, presented string) (*domain.TokenPair, error) {
	claims, err := s.jwtManager.VerifyRefreshToken(presented)
	if err != nil {
		return nil, apperrors.Unauthorized("refresh token is expired or already used")
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthorized("refresh token is expired or already used")
		}
		return nil, err
	}

	if user.RefreshToken == nil || *user.RefreshToken != presented {
		return nil, apperrors.Unauthorized("refresh token is expired or already used")
	}

	return s.issuePair(ctx, user)
}

// Revoke clears the user's refresh-token slot. Revoking an already-empty
// slot succeeds, so logout is idempotent.
func (s *AuthService) Revoke(ctx context.Context, userID string) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}

// ChangePassword replaces the stored hash and rotates the token pair so any
// stolen refresh token dies with the old password.
func (s *AuthService) ChangePassword(ctx context.Context, userID, newPassword string) (*domain.TokenPair, error) {
	if len(newPassword) < minPasswordLength {
		return nil, apperrors.InvalidInput("password must be at least 8 characters")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(newPassword)) == nil {
		return nil, apperrors.InvalidInput("new password must differ from the current password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return nil, err
	}

	return s.issuePair(ctx, user)
}

// Authenticate verifies an access token and re-fetches the user, so a valid
// signature for a deleted account still fails. It backs the session middleware.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*middleware.Identity, error) {
	claims, err := s.jwtManager.VerifyAccessToken(token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil, apperrors.Unauthorized("token expired")
		}
		return nil, apperrors.Unauthorized("invalid access token")
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthorized("user no longer exists")
		}
		return nil, err
	}

	return &middleware.Identity{
		UserID:   user.ID,
		Username: user.Username,
	}, nil
}

// issuePair signs a fresh access/refresh pair and persists the refresh token
// into the user's slot before returning. A persistence failure aborts the
// operation so no pair circulates without its slot.
func (s *AuthService) issuePair(ctx context.Context, user *domain.User) (*domain.TokenPair, error) {
	access, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	refresh, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	if err := s.userRepo.SetRefreshToken(ctx, user.ID, refresh); err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
