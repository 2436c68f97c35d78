package services

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/utils"
)

// MaxUploadSize is the largest file the bridge accepts.
const MaxUploadSize = 10 << 20 // 10 MB

var allowedUploadTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

// MediaUploader forwards file bytes to the external media host and
// returns the hosted URL.
type MediaUploader interface {
	Upload(ctx context.Context, file io.Reader) (string, error)
}

// UploadService validates uploads before they ever reach the media
// host. There is no local fallback storage.
type UploadService struct {
	uploader MediaUploader
}

func NewUploadService(uploader MediaUploader) *UploadService {
	return &UploadService{uploader: uploader}
}

func (s *UploadService) Upload(ctx context.Context, file io.Reader, contentType string, size int64) (string, error) {
	if _, ok := allowedUploadTypes[contentType]; !ok {
		return "", &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("Unsupported file type %q: only JPEG, PNG, WebP and GIF images are accepted", contentType),
			Err:        utils.ErrValidation,
		}
	}
	if size > MaxUploadSize {
		return "", &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Message:    "File exceeds the 10 MB upload limit",
			Err:        utils.ErrValidation,
		}
	}

	url, err := s.uploader.Upload(ctx, file)
	if err != nil {
		return "", &utils.AppError{
			StatusCode: http.StatusInternalServerError,
			Message:    "Upload to media host failed",
			Err:        err,
		}
	}
	return url, nil
}
