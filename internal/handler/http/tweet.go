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

// TweetHandler handles HTTP requests for tweet endpoints.
type TweetHandler struct {
	service *service.TweetService
	logger  *slog.Logger
}

// NewTweetHandler creates a new tweet HTTP handler.
func NewTweetHandler(svc *service.TweetService, logger *slog.Logger) *TweetHandler {
	return &TweetHandler{service: svc, logger: logger}
}

// TweetRequest is the JSON request body for creating or updating a tweet.
type TweetRequest struct {
	Content string `json:"content" validate:"required,min=1,max=280"`
}

// ListByChannel handles GET /api/v1/tweets/{channelId}.
func (h *TweetHandler) ListByChannel(w http.ResponseWriter, r *http.Request) {
	channelID, ok := httputil.ParseUUID(w, chi.URLParam(r, "channelId"))
	if !ok {
		return
	}

	tweets, err := h.service.ListByChannel(r.Context(), channelID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: tweets})
}

// Create handles POST /api/v1/tweets.
func (h *TweetHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)

	var req TweetRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	ownerID := middleware.UserIDFromContext(r.Context())
	tweet, err := h.service.Create(r.Context(), ownerID, req.Content)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: tweet})
}

// Update handles PATCH /api/v1/tweets/{id}.
func (h *TweetHandler) Update(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)

	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req TweetRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	ownerID := middleware.UserIDFromContext(r.Context())
	tweet, err := h.service.Update(r.Context(), id, ownerID, req.Content)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: tweet})
}

// Delete handles DELETE /api/v1/tweets/{id}.
func (h *TweetHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
		Data: map[string]string{"message": "tweet deleted"},
	})
}
