package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/storage"
	apperrors "github.com/shubhajit-paul-web/youtube-fullstack/pkg/errors"
)

// FileInput is an uploaded file as received from a multipart form.
type FileInput struct {
	Filename string
	Size     int64
	Data     io.Reader
}

// sniffLimit is how many leading bytes mimetype needs for detection.
const sniffLimit = 3072

// uploadMedia sniffs the file's real content type, rejects anything outside
// wantType (a prefix such as "image/" or "video/"), and stores the file under
// a generated key. The multipart Content-Type header is never trusted.
func uploadMedia(ctx context.Context, store storage.Storage, keyPrefix, wantType string, f *FileInput) (*storage.UploadResult, error) {
	header := make([]byte, sniffLimit)
	n, err := io.ReadFull(f.Data, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	header = header[:n]

	mtype := mimetype.Detect(header)
	if !strings.HasPrefix(mtype.String(), wantType) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("expected %s* content, got %s", wantType, mtype.String()))
	}

	key := fmt.Sprintf("%s/%s%s", keyPrefix, uuid.New().String(), mtype.Extension())

	return store.Upload(ctx, &storage.UploadInput{
		Key:         key,
		ContentType: mtype.String(),
		Size:        f.Size,
		Data:        io.MultiReader(bytes.NewReader(header), f.Data),
	})
}

// cleanupObject deletes an uploaded object by its URL, logging failures. Used
// after a database insert fails so storage does not accumulate orphans.
func cleanupObject(ctx context.Context, store storage.Storage, logger *slog.Logger, url string) {
	if url == "" {
		return
	}
	key, ok := store.KeyFromURL(url)
	if !ok {
		return
	}
	if err := store.Delete(ctx, key); err != nil {
		logger.WarnContext(ctx, "failed to clean up stored object",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}
