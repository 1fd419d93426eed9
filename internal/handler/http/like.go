package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/service"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/httputil"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/middleware"
)

// LikeHandler handles HTTP requests for like endpoints.
type LikeHandler struct {
	service *service.LikeService
	logger  *slog.Logger
}

// NewLikeHandler creates a new like HTTP handler.
func NewLikeHandler(svc *service.LikeService, logger *slog.Logger) *LikeHandler {
	return &LikeHandler{service: svc, logger: logger}
}

// Toggle handles POST /api/v1/likes/{targetType}/{targetId}.
func (h *LikeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	targetID, ok := httputil.ParseUUID(w, chi.URLParam(r, "targetId"))
	if !ok {
		return
	}
	targetType := chi.URLParam(r, "targetType")

	userID := middleware.UserIDFromContext(r.Context())
	liked, err := h.service.Toggle(r.Context(), userID, targetType, targetID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: map[string]bool{"liked": liked},
	})
}

// LikedVideos handles GET /api/v1/likes/videos.
func (h *LikeHandler) LikedVideos(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	videos, err := h.service.ListLikedVideos(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: videos})
}
