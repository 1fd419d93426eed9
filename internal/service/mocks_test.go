package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/domain"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/repository"
)

// --- Mock User Repository ---

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *mockUserRepository) SetRefreshToken(ctx context.Context, userID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *mockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockUserRepository) GetChannelProfile(ctx context.Context, username, viewerID string) (*domain.ChannelProfile, error) {
	args := m.Called(ctx, username, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChannelProfile), args.Error(1)
}

func (m *mockUserRepository) AddWatchEntry(ctx context.Context, userID, videoID string) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

func (m *mockUserRepository) ListWatchHistory(ctx context.Context, userID string, offset, limit int) ([]domain.WatchEntry, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	return args.Get(0).([]domain.WatchEntry), args.Int(1), args.Error(2)
}

// --- Mock Video Repository ---

type mockVideoRepository struct {
	mock.Mock
}

func (m *mockVideoRepository) Create(ctx context.Context, video *domain.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *mockVideoRepository) GetByID(ctx context.Context, id string) (*domain.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *mockVideoRepository) ListChannel(ctx context.Context, q repository.ChannelVideosQuery) ([]domain.Video, int, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]domain.Video), args.Int(1), args.Error(2)
}

func (m *mockVideoRepository) UpdateOwned(ctx context.Context, id, ownerID string, patch repository.VideoUpdate) (*domain.Video, error) {
	args := m.Called(ctx, id, ownerID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *mockVideoRepository) DeleteOwned(ctx context.Context, id, ownerID string) (*domain.Video, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *mockVideoRepository) IncrementViews(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockVideoRepository) ExistsPublished(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- Mock Comment Repository ---

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepository) ListByTarget(ctx context.Context, targetType, targetID string, offset, limit int) ([]domain.CommentWithOwner, int, error) {
	args := m.Called(ctx, targetType, targetID, offset, limit)
	return args.Get(0).([]domain.CommentWithOwner), args.Int(1), args.Error(2)
}

func (m *mockCommentRepository) UpdateOwned(ctx context.Context, id, ownerID, content string) (*domain.Comment, error) {
	args := m.Called(ctx, id, ownerID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *mockCommentRepository) DeleteOwned(ctx context.Context, id, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *mockCommentRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- Mock Tweet Repository ---

type mockTweetRepository struct {
	mock.Mock
}

func (m *mockTweetRepository) Create(ctx context.Context, tweet *domain.Tweet) error {
	args := m.Called(ctx, tweet)
	return args.Error(0)
}

func (m *mockTweetRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Tweet, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Tweet), args.Error(1)
}

func (m *mockTweetRepository) UpdateOwned(ctx context.Context, id, ownerID, content string) (*domain.Tweet, error) {
	args := m.Called(ctx, id, ownerID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tweet), args.Error(1)
}

func (m *mockTweetRepository) DeleteOwned(ctx context.Context, id, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *mockTweetRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- Mock Like Repository ---

type mockLikeRepository struct {
	mock.Mock
}

func (m *mockLikeRepository) Insert(ctx context.Context, like *domain.Like) (bool, error) {
	args := m.Called(ctx, like)
	return args.Bool(0), args.Error(1)
}

func (m *mockLikeRepository) Delete(ctx context.Context, targetType, targetID, likedBy string) (bool, error) {
	args := m.Called(ctx, targetType, targetID, likedBy)
	return args.Bool(0), args.Error(1)
}

func (m *mockLikeRepository) ListLikedVideos(ctx context.Context, userID string) ([]domain.VideoWithOwner, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.VideoWithOwner), args.Error(1)
}

// --- Mock Playlist Repository ---

type mockPlaylistRepository struct {
	mock.Mock
}

func (m *mockPlaylistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *mockPlaylistRepository) GetByID(ctx context.Context, id string) (*domain.PlaylistWithVideos, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlaylistWithVideos), args.Error(1)
}

func (m *mockPlaylistRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Playlist, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Playlist), args.Error(1)
}

func (m *mockPlaylistRepository) UpdateOwned(ctx context.Context, id, ownerID string, name, description *string) (*domain.Playlist, error) {
	args := m.Called(ctx, id, ownerID, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *mockPlaylistRepository) DeleteOwned(ctx context.Context, id, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *mockPlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID, ownerID string) error {
	args := m.Called(ctx, playlistID, videoID, ownerID)
	return args.Error(0)
}

func (m *mockPlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID, ownerID string) error {
	args := m.Called(ctx, playlistID, videoID, ownerID)
	return args.Error(0)
}

// --- Mock Subscription Repository ---

type mockSubscriptionRepository struct {
	mock.Mock
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockSubscriptionRepository) Delete(ctx context.Context, subscriberID, channelID string) error {
	args := m.Called(ctx, subscriberID, channelID)
	return args.Error(0)
}

func (m *mockSubscriptionRepository) ListSubscribers(ctx context.Context, channelID string) ([]domain.ChannelSummary, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).([]domain.ChannelSummary), args.Error(1)
}

func (m *mockSubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.ChannelSummary, error) {
	args := m.Called(ctx, subscriberID)
	return args.Get(0).([]domain.ChannelSummary), args.Error(1)
}
