package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/repository"
	"github.com/shubhajit-paul-web/youtube-fullstack/internal/service"
	apperrors "github.com/shubhajit-paul-web/youtube-fullstack/pkg/errors"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/httputil"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/middleware"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/pagination"
	"github.com/shubhajit-paul-web/youtube-fullstack/pkg/validator"
)

// maxVideoUpload caps video file uploads.
const maxVideoUpload = 512 << 20 // 512MB

// VideoHandler handles HTTP requests for video endpoints.
type VideoHandler struct {
	service *service.VideoService
	logger  *slog.Logger
}

// NewVideoHandler creates a new video HTTP handler.
func NewVideoHandler(svc *service.VideoService, logger *slog.Logger) *VideoHandler {
	return &VideoHandler{service: svc, logger: logger}
}

// publishForm is the multipart form for publishing a video.
type publishForm struct {
	Title       string  `validate:"required,min=1,max=100"`
	Description string  `validate:"max=500"`
	Duration    float64 `validate:"required,gt=0"`
}

// List handles GET /api/v1/videos?channelId=&query=&sortBy=&sortType=.
func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	channelID, ok := httputil.ParseUUID(w, r.URL.Query().Get("channelId"))
	if !ok {
		return
	}

	p := pagination.FromRequest(r)
	q := repository.ChannelVideosQuery{
		ChannelID: channelID,
		Query:     r.URL.Query().Get("query"),
		SortBy:    r.URL.Query().Get("sortBy"),
		SortDesc:  r.URL.Query().Get("sortType") == "desc",
		Offset:    p.Offset,
		Limit:     p.PerPage,
	}

	videos, total, err := h.service.List(r.Context(), q)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.NewPaginatedResponse(videos, total, p.Page, p.PerPage))
}

// Publish handles POST /api/v1/videos (multipart/form-data).
func (h *VideoHandler) Publish(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxVideoUpload)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid multipart form: " + err.Error()},
		})
		return
	}

	duration, err := strconv.ParseFloat(r.FormValue("duration"), 64)
	if err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("duration must be a number of seconds"), h.logger)
		return
	}

	form := publishForm{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Duration:    duration,
	}
	if err := validator.Validate(form); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	videoFile, err := fileFromForm(r, "videoFile")
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	thumbnail, err := fileFromForm(r, "thumbnail")
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	ownerID := middleware.UserIDFromContext(r.Context())
	video, err := h.service.Publish(r.Context(), ownerID, service.PublishInput{
		Title:       form.Title,
		Description: form.Description,
		Duration:    form.Duration,
		VideoFile:   videoFile,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: video})
}

// Get handles GET /api/v1/videos/{id}.
func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	viewerID := middleware.UserIDFromContext(r.Context())
	video, err := h.service.Get(r.Context(), id, viewerID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: video})
}

// Update handles PATCH /api/v1/videos/{id} (multipart/form-data; all fields
// optional, thumbnail replaces the stored one).
func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxImageUpload); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid multipart form: " + err.Error()},
		})
		return
	}

	input := service.UpdateInput{}
	if v, ok := formValue(r, "title"); ok {
		input.Title = &v
	}
	if v, ok := formValue(r, "description"); ok {
		input.Description = &v
	}
	if v, ok := formValue(r, "isPublished"); ok {
		published, err := strconv.ParseBool(v)
		if err != nil {
			httputil.WriteError(w, r, apperrors.InvalidInput("isPublished must be true or false"), h.logger)
			return
		}
		input.IsPublished = &published
	}

	thumbnail, err := fileFromForm(r, "thumbnail")
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	input.Thumbnail = thumbnail

	ownerID := middleware.UserIDFromContext(r.Context())
	video, err := h.service.Update(r.Context(), id, ownerID, input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: video})
}

// Delete handles DELETE /api/v1/videos/{id}.
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
		Data: map[string]string{"message": "video deleted"},
	})
}

// formValue distinguishes an absent form field from an empty one.
func formValue(r *http.Request, key string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	vals, ok := r.MultipartForm.Value[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}
