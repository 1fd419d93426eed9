package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/service"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/httputil"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/middleware"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/validator"
)

// PlaylistHandler handles HTTP requests for playlist endpoints.
type PlaylistHandler struct {
	service *service.PlaylistService
	logger  *slog.Logger
}

// NewPlaylistHandler creates a new playlist HTTP handler.
func NewPlaylistHandler(svc *service.PlaylistService, logger *slog.Logger) *PlaylistHandler {
	return &PlaylistHandler{service: svc, logger: logger}
}

// CreatePlaylistRequest is the JSON request body for creating a playlist.
type CreatePlaylistRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=50"`
	Description string `json:"description" validate:"max=250"`
}

// UpdatePlaylistRequest is the JSON request body for updating a playlist.
type UpdatePlaylistRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=50"`
	Description *string `json:"description" validate:"omitempty,max=250"`
}

// Create handles POST /api/v1/playlists.
func (h *PlaylistHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)

	var req CreatePlaylistRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	ownerID := middleware.UserIDFromContext(r.Context())
	playlist, err := h.service.Create(r.Context(), ownerID, req.Name, req.Description)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: playlist})
}

// Get handles GET /api/v1/playlists/{id}.
func (h *PlaylistHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	playlist, err := h.service.Get(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: playlist})
}

// ListByUser handles GET /api/v1/playlists/user/{userId}.
func (h *PlaylistHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := httputil.ParseUUID(w, chi.URLParam(r, "userId"))
	if !ok {
		return
	}

	playlists, err := h.service.ListByOwner(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: playlists})
}

// Update handles PATCH /api/v1/playlists/{id}.
func (h *PlaylistHandler) Update(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)

	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req UpdatePlaylistRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	ownerID := middleware.UserIDFromContext(r.Context())
	playlist, err := h.service.Update(r.Context(), id, ownerID, req.Name, req.Description)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: playlist})
}

// Delete handles DELETE /api/v1/playlists/{id}.
func (h *PlaylistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	ownerID := middleware.UserIDFromContext(r.Context())
	if err := h.service.Delete(r.Context(), id, ownerID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: map[string]string{"message": "playlist deleted"},
	})
}

// AddVideo handles POST /api/v1/playlists/{playlistId}/videos/{videoId}.
func (h *PlaylistHandler) AddVideo(w http.ResponseWriter, r *http.Request) {
	playlistID, ok := httputil.ParseUUID(w, chi.URLParam(r, "playlistId"))
	if !ok {
		return
	}
	videoID, ok := httputil.ParseUUID(w, chi.URLParam(r, "videoId"))
	if !ok {
		return
	}

	ownerID := middleware.UserIDFromContext(r.Context())
	if err := h.service.AddVideo(r.Context(), playlistID, videoID, ownerID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{
		Data: map[string]string{"message": "video added to playlist"},
	})
}

// RemoveVideo handles DELETE /api/v1/playlists/{playlistId}/videos/{videoId}.
func (h *PlaylistHandler) RemoveVideo(w http.ResponseWriter, r *http.Request) {
	playlistID, ok := httputil.ParseUUID(w, chi.URLParam(r, "playlistId"))
	if !ok {
		return
	}
	videoID, ok := httputil.ParseUUID(w, chi.URLParam(r, "videoId"))
	if !ok {
		return
	}

	ownerID := middleware.UserIDFromContext(r.Context())
	if err := h.service.RemoveVideo(r.Context(), playlistID, videoID, ownerID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: map[string]string{"message": "video removed from playlist"},
	})
}
