package service

import (
	"context"
	"io"
)

type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
	// ThumbnailURL builds a derived asset URL for an already-uploaded file.
	ThumbnailURL(publicID string) (string, error)
}
