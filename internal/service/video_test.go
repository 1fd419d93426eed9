package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/domain"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/repository"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/storage"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/storage/memory"
	apperrors "github.com/shubhajit-paul-web/youtube-fullstack/pkg/errors"
)

// ebmlHeader is enough of a Matroska/WebM container for content-type sniffing.
var ebmlHeader = append([]byte{0x1a, 0x45, 0xdf, 0xa3}, make([]byte, 16)...)

func videoFile() *FileInput {
	return &FileInput{
		Filename: "clip.mkv",
		Size:     int64(len(ebmlHeader)),
		Data:     bytes.NewReader(ebmlHeader),
	}
}

func uploadInputForTest(key string) *storage.UploadInput {
	return &storage.UploadInput{
		Key:         key,
		ContentType: "application/octet-stream",
		Size:        4,
		Data:        bytes.NewReader([]byte{1, 2, 3, 4}),
	}
}

func newVideoTestService(videoRepo *mockVideoRepository, userRepo *mockUserRepository) (*VideoService, *memory.Storage) {
	store := memory.New("https://media.test")
	svc := NewVideoService(videoRepo, userRepo, store, nil, nil, testLogger())
	return svc, store
}

func TestVideoService_Publish_Success(t *testing.T) {
	videoRepo := new(mockVideoRepository)
	userRepo := new(mockUserRepository)
	svc, store := newVideoTestService(videoRepo, userRepo)

	videoRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Video")).Return(nil)

	video, err := svc.Publish(context.Background(), "u-1", PublishInput{
		Title:     "Opening traps",
		Duration:  61.5,
		VideoFile: videoFile(),
		Thumbnail: pngFile(),
	})
	require.NoError(t, err)
	assert.Equal(t, "u-1", video.OwnerID)
	assert.True(t, video.IsPublished)
	assert.NotEmpty(t, video.VideoURL)
	assert.NotEmpty(t, video.ThumbnailURL)
	assert.Equal(t, 2, store.Len())
	videoRepo.AssertExpectations(t)
}

func TestVideoService_Publish_InsertFailureCleansStorage(t *testing.T) {
	videoRepo := new(mockVideoRepository)
	userRepo := new(mockUserRepository)
	svc, store := newVideoTestService(videoRepo, userRepo)

	videoRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Video")).
		Return(apperrors.Internal(errors.New("connection reset")))

	_, err := svc.Publish(context.Background(), "u-1", PublishInput{
		Title:     "Opening traps",
		Duration:  61.5,
		VideoFile: videoFile(),
		Thumbnail: pngFile(),
	})
	require.Error(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestVideoService_Publish_RejectsImageAsVideo(t *testing.T) {
	videoRepo := new(mockVideoRepository)
	userRepo := new(mockUserRepository)
	svc, _ := newVideoTestService(videoRepo, userRepo)

	_, err := svc.Publish(context.Background(), "u-1", PublishInput{
		Title:     "Opening traps",
		Duration:  61.5,
		VideoFile: pngFile(),
		Thumbnail: pngFile(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	videoRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVideoService_Get_UnpublishedHiddenFromOthers(t *testing.T) {
	videoRepo := new(mockVideoRepository)
	userRepo := new(mockUserRepository)
	svc, _ := newVideoTestService(videoRepo, userRepo)

	draft := &domain.Video{ID: "v-1", OwnerID: "u-1", IsPublished: false}
	videoRepo.On("GetByID", mock.Anything, "v-1").Return(draft, nil)

	_, err := svc.Get(context.Background(), "v-1", "u-2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestVideoService_Get_OwnerSeesUnpublished(t *testing.T) {
	videoRepo := new(mockVideoRepository)
	userRepo := new(mockUserRepository)
	svc, _ := newVideoTestService(videoRepo, userRepo)

	draft := &domain.Video{ID: "v-1", OwnerID: "u-1", IsPublished: false}
	videoRepo.On("GetByID", mock.Anything, "v-1").Return(draft, nil)
	userRepo.On("AddWatchEntry", mock.Anything, "u-1", "v-1").Return(nil)

	got, err := svc.Get(context.Background(), "v-1", "u-1")
	require.NoError(t, err)
	assert.Equal(t, "v-1", got.ID)
}

func TestVideoService_Update_WrongOwnerCleansNewThumbnail(t *testing.T) {
	videoRepo := new(mockVideoRepository)
	userRepo := new(mockUserRepository)
	svc, store := newVideoTestService(videoRepo, userRepo)

	current := &domain.Video{ID: "v-1", OwnerID: "u-1", ThumbnailURL: "https://media.test/thumbnails/old.png"}
	videoRepo.On("GetByID", mock.Anything, "v-1").Return(current, nil)
	videoRepo.On("UpdateOwned", mock.Anything, "v-1", "intruder", mock.AnythingOfType("repository.VideoUpdate")).
		Return(nil, apperrors.NotFound("video", "v-1"))

	_, err := svc.Update(context.Background(), "v-1", "intruder", UpdateInput{Thumbnail: pngFile()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, 0, store.Len())
}

func TestVideoService_Delete_CleansStorage(t *testing.T) {
	videoRepo := new(mockVideoRepository)
	userRepo := new(mockUserRepository)
	svc, store := newVideoTestService(videoRepo, userRepo)

	// Seed the store with the objects the row points at.
	videoRes, err := store.Upload(context.Background(), uploadInputForTest("videos/v-1.mkv"))
	require.NoError(t, err)
	thumbRes, err := store.Upload(context.Background(), uploadInputForTest("thumbnails/v-1.png"))
	require.NoError(t, err)

	deleted := &domain.Video{ID: "v-1", OwnerID: "u-1", VideoURL: videoRes.URL, ThumbnailURL: thumbRes.URL}
	videoRepo.On("DeleteOwned", mock.Anything, "v-1", "u-1").Return(deleted, nil)

	require.NoError(t, svc.Delete(context.Background(), "v-1", "u-1"))
	assert.Equal(t, 0, store.Len())
	videoRepo.AssertExpectations(t)
}

func TestVideoService_List_UnknownChannel(t *testing.T) {
	videoRepo := new(mockVideoRepository)
	userRepo := new(mockUserRepository)
	svc, _ := newVideoTestService(videoRepo, userRepo)

	userRepo.On("GetByID", mock.Anything, "missing-channel").Return(nil, apperrors.ErrNotFound)

	_, _, err := svc.List(context.Background(), repository.ChannelVideosQuery{ChannelID: "missing-channel"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	videoRepo.AssertNotCalled(t, "ListChannel", mock.Anything, mock.Anything)
}
