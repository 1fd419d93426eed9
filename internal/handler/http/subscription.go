package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/domain"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/service"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/httputil"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/middleware"
)

// SubscriptionHandler handles HTTP requests for subscription endpoints.
type SubscriptionHandler struct {
	service *service.SubscriptionService
	logger  *slog.Logger
}

// NewSubscriptionHandler creates a new subscription HTTP handler.
func NewSubscriptionHandler(svc *service.SubscriptionService, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{service: svc, logger: logger}
}

// channelListResponse pairs a channel list with its count.
type channelListResponse struct {
	Channels []domain.ChannelSummary `json:"channels"`
	Count    int                     `json:"count"`
}

// Subscribe handles POST /api/v1/subscriptions/c/{channelId}.
func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	channelID, ok := httputil.ParseUUID(w, chi.URLParam(r, "channelId"))
	if !ok {
		return
	}

	subscriberID := middleware.UserIDFromContext(r.Context())
	sub, err := h.service.Subscribe(r.Context(), subscriberID, channelID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: sub})
}

// Unsubscribe handles DELETE /api/v1/subscriptions/c/{channelId}.
func (h *SubscriptionHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	channelID, ok := httputil.ParseUUID(w, chi.URLParam(r, "channelId"))
	if !ok {
		return
	}

	subscriberID := middleware.UserIDFromContext(r.Context())
	if err := h.service.Unsubscribe(r.Context(), subscriberID, channelID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: map[string]string{"message": "unsubscribed"},
	})
}

// Subscribers handles GET /api/v1/subscriptions/c/{channelId}.
func (h *SubscriptionHandler) Subscribers(w http.ResponseWriter, r *http.Request) {
	channelID, ok := httputil.ParseUUID(w, chi.URLParam(r, "channelId"))
	if !ok {
		return
	}

	channels, err := h.service.ListSubscribers(r.Context(), channelID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	if channels == nil {
		channels = []domain.ChannelSummary{}
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: channelListResponse{Channels: channels, Count: len(channels)},
	})
}

// SubscribedChannels handles GET /api/v1/subscriptions/u/{channelId}.
func (h *SubscriptionHandler) SubscribedChannels(w http.ResponseWriter, r *http.Request) {
	subscriberID, ok := httputil.ParseUUID(w, chi.URLParam(r, "channelId"))
	if !ok {
		return
	}

	channels, err := h.service.ListSubscribedChannels(r.Context(), subscriberID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	if channels == nil {
		channels = []domain.ChannelSummary{}
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: channelListResponse{Channels: channels, Count: len(channels)},
	})
}
