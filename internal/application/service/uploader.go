package service

import (
	"context"
	"io"
)

// Uploader abstracts the media storage used for the profile avatar.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
