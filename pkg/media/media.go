// Package media stores images with an external media service.
package media

import (
	"context"
	"errors"
	"io"
)

var ErrNotConfigured = errors.New("media uploads are not configured")

type Asset struct {
	URL      string
	PublicID string
	Width    int
	Height   int
}

type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (Asset, error)
	Delete(ctx context.Context, publicID string) error
}

// Disabled rejects every upload. It stands in when no media service is
// configured so the rest of the API still starts.
type Disabled struct{}

func (Disabled) Upload(context.Context, string, io.Reader) (Asset, error) {
	return Asset{}, ErrNotConfigured
}

func (Disabled) Delete(context.Context, string) error {
	return ErrNotConfigured
}
