package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/shubhajit-paul-web/youtube-fullstack/pkg/errors"
)

func TestPlaylistService_AddVideo_RequiresPublishedVideo(t *testing.T) {
	playlistRepo := new(mockPlaylistRepository)
	videoRepo := new(mockVideoRepository)
	svc := NewPlaylistService(playlistRepo, videoRepo, testLogger())

	videoRepo.On("ExistsPublished", mock.Anything, "v-draft").Return(false, nil)

	err := svc.AddVideo(context.Background(), "p-1", "v-draft", "u-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	playlistRepo.AssertNotCalled(t, "AddVideo", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaylistService_AddVideo_Success(t *testing.T) {
	playlistRepo := new(mockPlaylistRepository)
	videoRepo := new(mockVideoRepository)
	svc := NewPlaylistService(playlistRepo, videoRepo, testLogger())

	videoRepo.On("ExistsPublished", mock.Anything, "v-1").Return(true, nil)
	playlistRepo.On("AddVideo", mock.Anything, "p-1", "v-1", "u-1").Return(nil)

	require.NoError(t, svc.AddVideo(context.Background(), "p-1", "v-1", "u-1"))
	playlistRepo.AssertExpectations(t)
}

func TestPlaylistService_Create_NameTooLong(t *testing.T) {
	playlistRepo := new(mockPlaylistRepository)
	svc := NewPlaylistService(playlistRepo, new(mockVideoRepository), testLogger())

	_, err := svc.Create(context.Background(), "u-1", strings.Repeat("a", 51), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	playlistRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaylistService_Update_WrongOwner(t *testing.T) {
	playlistRepo := new(mockPlaylistRepository)
	svc := NewPlaylistService(playlistRepo, new(mockVideoRepository), testLogger())

	name := "renamed"
	playlistRepo.On("UpdateOwned", mock.Anything, "p-1", "intruder", &name, (*string)(nil)).
		Return(nil, apperrors.NotFound("playlist", "p-1"))

	_, err := svc.Update(context.Background(), "p-1", "intruder", &name, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
