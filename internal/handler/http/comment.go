package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/service"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/httputil"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/middleware"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/pagination"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/validator"
)

// CommentHandler handles HTTP requests for comment endpoints.
type CommentHandler struct {
	service *service.CommentService
	logger  *slog.Logger
}

// NewCommentHandler creates a new comment HTTP handler.
func NewCommentHandler(svc *service.CommentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{service: svc, logger: logger}
}

// CommentRequest is the JSON request body for creating or updating a comment.
type CommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=150"`
}

// List handles GET /api/v1/comments/{targetType}/{targetId}.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	targetID, ok := httputil.ParseUUID(w, chi.URLParam(r, "targetId"))
	if !ok {
		return
	}
	targetType := chi.URLParam(r, "targetType")
	p := pagination.FromRequest(r)

	comments, total, err := h.service.List(r.Context(), targetType, targetID, p)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.NewPaginatedResponse(comments, total, p.Page, p.PerPage))
}

// Create handles POST /api/v1/comments/{targetType}/{targetId}.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)

	targetID, ok := httputil.ParseUUID(w, chi.URLParam(r, "targetId"))
	if !ok {
		return
	}
	targetType := chi.URLParam(r, "targetType")

	var req CommentRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	ownerID := middleware.UserIDFromContext(r.Context())
	comment, err := h.service.Create(r.Context(), ownerID, targetType, targetID, req.Content)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: comment})
}

// Update handles PATCH /api/v1/comments/{id}.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)

	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req CommentRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	ownerID := middleware.UserIDFromContext(r.Context())
	comment, err := h.service.Update(r.Context(), id, ownerID, req.Content)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: comment})
}

// Delete handles DELETE /api/v1/comments/{id}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
		Data: map[string]string{"message": "comment deleted"},
	})
}
