package http

import (
	"errors"
	"net/http"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/service"
	apperrors "github.com/shubhajit-paul-web/youtube-fullstack/pkg/errors"
)

// fileFromForm pulls a file part out of a parsed multipart form. A missing
// part returns (nil, nil) so callers can treat it as optional; the service
// layer decides what is required.
func fileFromForm(r *http.Request, field string) (*service.FileInput, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, apperrors.InvalidInput("invalid file field " + field)
	}

	return &service.FileInput{
		Filename: header.Filename,
		Size:     header.Size,
		Data:     file,
	}, nil
}
