package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/domain"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/repository"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/service"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/storage/memory"
)

const videoTestChannelID = "55555555-5555-5555-5555-555555555555"

func setupVideoRouter(videoRepo *mockVideoRepo, userRepo *mockUserRepo) *chi.Mux {
	svc := service.NewVideoService(videoRepo, userRepo, memory.New("https://media.test"), nil, nil, authTestLogger())
	handler := NewVideoHandler(svc, authTestLogger())

	r := chi.NewRouter()
	r.Route("/api/v1/videos", func(r chi.Router) {
		r.Get("/", handler.List)
	})
	return r
}

func TestListVideos_DefaultSortAscending(t *testing.T) {
	videoRepo := new(mockVideoRepo)
	userRepo := new(mockUserRepo)
	router := setupVideoRouter(videoRepo, userRepo)

	userRepo.On("GetByID", mock.Anything, videoTestChannelID).
		Return(&domain.User{ID: videoTestChannelID}, nil)
	videoRepo.On("ListChannel", mock.Anything, mock.MatchedBy(func(q repository.ChannelVideosQuery) bool {
		return !q.SortDesc
	})).Return([]domain.Video{}, 0, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/videos?channelId="+videoTestChannelID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	videoRepo.AssertExpectations(t)
}

func TestListVideos_DescendingWhenRequested(t *testing.T) {
	videoRepo := new(mockVideoRepo)
	userRepo := new(mockUserRepo)
	router := setupVideoRouter(videoRepo, userRepo)

	userRepo.On("GetByID", mock.Anything, videoTestChannelID).
		Return(&domain.User{ID: videoTestChannelID}, nil)
	videoRepo.On("ListChannel", mock.Anything, mock.MatchedBy(func(q repository.ChannelVideosQuery) bool {
		return q.SortDesc
	})).Return([]domain.Video{}, 0, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/videos?channelId="+videoTestChannelID+"&sortType=desc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	videoRepo.AssertExpectations(t)
}
