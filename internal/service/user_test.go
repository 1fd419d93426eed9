package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/domain"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/storage/memory"
	apperrors "github.com/shubhajit-paul-web/youtube-fullstack/pkg/errors"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/pagination"
)

func strPtr(s string) *string { return &s }

func newUserTestService(userRepo *mockUserRepository) (*UserService, *memory.Storage) {
	store := memory.New("https://media.test")
	svc := NewUserService(userRepo, store, testLogger())
	return svc, store
}

func TestUserService_UpdateAccount_NormalizesEmail(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewUserService(userRepo, memory.New("https://media.test"), testLogger())

	userRepo.On("GetByID", mock.Anything, "u-1").Return(&domain.User{
		ID:       "u-1",
		Username: "alice",
		Email:    "old@example.com",
	}, nil)
	userRepo.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "new@example.com"
	})).Return(nil)

	user, err := svc.UpdateAccount(context.Background(), "u-1", UpdateAccountInput{
		Email: strPtr("  New@Example.COM "),
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	userRepo.AssertExpectations(t)
}

func TestUserService_UpdateAccount_DuplicateEmail(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewUserService(userRepo, memory.New("https://media.test"), testLogger())

	userRepo.On("GetByID", mock.Anything, "u-1").Return(&domain.User{ID: "u-1"}, nil)
	userRepo.On("UpdateProfile", mock.Anything, mock.Anything).
		Return(apperrors.AlreadyExists("user", "email", "taken@example.com"))

	_, err := svc.UpdateAccount(context.Background(), "u-1", UpdateAccountInput{
		Email: strPtr("taken@example.com"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrAlreadyExists))
}

func TestUserService_UpdateAccount_PartialPatch(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewUserService(userRepo, memory.New("https://media.test"), testLogger())

	userRepo.On("GetByID", mock.Anything, "u-1").Return(&domain.User{
		ID:        "u-1",
		Email:     "keep@example.com",
		FirstName: "Old",
		LastName:  "Name",
	}, nil)
	userRepo.On("UpdateProfile", mock.Anything, mock.Anything).Return(nil)

	user, err := svc.UpdateAccount(context.Background(), "u-1", UpdateAccountInput{
		FirstName: strPtr("New"),
	})
	require.NoError(t, err)
	assert.Equal(t, "New", user.FirstName)
	assert.Equal(t, "Name", user.LastName)
	assert.Equal(t, "keep@example.com", user.Email)
}

func TestUserService_GetChannelProfile_LowercasesUsername(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewUserService(userRepo, memory.New("https://media.test"), testLogger())

	userRepo.On("GetChannelProfile", mock.Anything, "alice", "u-2").Return(&domain.ChannelProfile{
		ID:              "u-1",
		Username:        "alice",
		SubscriberCount: 3,
		IsSubscribed:    true,
	}, nil)

	profile, err := svc.GetChannelProfile(context.Background(), "Alice", "u-2")
	require.NoError(t, err)
	assert.Equal(t, 3, profile.SubscriberCount)
	assert.True(t, profile.IsSubscribed)
	userRepo.AssertExpectations(t)
}

func TestUserService_GetWatchHistory(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewUserService(userRepo, memory.New("https://media.test"), testLogger())

	userRepo.On("ListWatchHistory", mock.Anything, "u-1", 10, 10).Return([]domain.WatchEntry{
		{Video: domain.Video{ID: "v-1"}},
	}, 11, nil)

	entries, total, err := svc.GetWatchHistory(context.Background(), "u-1", pagination.Params{Page: 2, PerPage: 10, Offset: 10})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, 11, total)
}

func TestUserService_UpdateAvatar_ReplacesAndDeletesOldObject(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc, store := newUserTestService(userRepo)

	old, err := store.Upload(context.Background(), uploadInputForTest("avatars/old.png"))
	require.NoError(t, err)

	userRepo.On("GetByID", mock.Anything, "u-1").Return(&domain.User{
		ID:        "u-1",
		Username:  "alice",
		AvatarURL: old.URL,
	}, nil)
	userRepo.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.AvatarURL != old.URL && u.AvatarURL != ""
	})).Return(nil)

	user, err := svc.UpdateAvatar(context.Background(), "u-1", pngFile())
	require.NoError(t, err)
	assert.NotEqual(t, old.URL, user.AvatarURL)
	assert.False(t, store.Exists("avatars/old.png"))
	assert.Equal(t, 1, store.Len())
	userRepo.AssertExpectations(t)
}

func TestUserService_UpdateAvatar_PersistFailureCleansNewUpload(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc, store := newUserTestService(userRepo)

	old, err := store.Upload(context.Background(), uploadInputForTest("avatars/old.png"))
	require.NoError(t, err)

	userRepo.On("GetByID", mock.Anything, "u-1").Return(&domain.User{
		ID:        "u-1",
		AvatarURL: old.URL,
	}, nil)
	userRepo.On("UpdateProfile", mock.Anything, mock.Anything).
		Return(apperrors.Internal(errors.New("connection reset")))

	_, err = svc.UpdateAvatar(context.Background(), "u-1", pngFile())
	require.Error(t, err)

	// The failed replacement leaves only the original object behind.
	assert.True(t, store.Exists("avatars/old.png"))
	assert.Equal(t, 1, store.Len())
}

func TestUserService_UpdateAvatar_MissingFile(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc, _ := newUserTestService(userRepo)

	_, err := svc.UpdateAvatar(context.Background(), "u-1", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	userRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
}

func TestUserService_UpdateCoverImage_RejectsNonImage(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc, store := newUserTestService(userRepo)

	userRepo.On("GetByID", mock.Anything, "u-1").Return(&domain.User{ID: "u-1"}, nil)

	_, err := svc.UpdateCoverImage(context.Background(), "u-1", videoFile())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	assert.Equal(t, 0, store.Len())
	userRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
}

func TestUserService_UpdateCoverImage_FirstCoverHasNothingToDelete(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc, store := newUserTestService(userRepo)

	userRepo.On("GetByID", mock.Anything, "u-1").Return(&domain.User{ID: "u-1"}, nil)
	userRepo.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.CoverImageURL != ""
	})).Return(nil)

	user, err := svc.UpdateCoverImage(context.Background(), "u-1", pngFile())
	require.NoError(t, err)
	assert.NotEmpty(t, user.CoverImageURL)
	assert.Equal(t, 1, store.Len())
	userRepo.AssertExpectations(t)
}
