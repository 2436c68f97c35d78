package services

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/utils"
)

// CloudinaryUploader implements MediaUploader against Cloudinary.
// Uploads land in a configured folder with a size-limiting transform
// applied on ingest.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cloudinaryURL, folder string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary client: %w", err)
	}
	return &CloudinaryUploader{cld: cld, folder: folder}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader) (string, error) {
	res, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         u.folder,
		PublicID:       uuid.NewString(),
		Transformation: "c_limit,w_2000,h_2000",
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrUpstream, err)
	}
	// The SDK reports API-level failures in the result body.
	if res.Error.Message != "" {
		return "", fmt.Errorf("%w: %s", utils.ErrUpstream, res.Error.Message)
	}
	return res.SecureURL, nil
}
