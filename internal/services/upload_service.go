package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tourly/internal/models/response_models"
	"tourly/pkg/auth"
	"tourly/pkg/media"
	"tourly/pkg/utils"
)

const MaxUploadFiles = 5

type UploadServiceInterface interface {
	// Upload stores every file or none of them. Descriptors come back in the
	// order the files were given.
	Upload(ctx context.Context, identity auth.Identity, files []*multipart.FileHeader) ([]response_models.ImageDescriptor, error)
}

type UploadService struct {
	uploader     media.Uploader
	maxFileBytes int64
}

func NewUploadService(uploader media.Uploader, maxFileBytes int64) UploadServiceInterface {
	return &UploadService{
		uploader:     uploader,
		maxFileBytes: maxFileBytes,
	}
}

func (s *UploadService) Upload(ctx context.Context, identity auth.Identity, files []*multipart.FileHeader) ([]response_models.ImageDescriptor, error) {
	if err := auth.Authorize(identity, auth.OpUploadImages); err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, utils.Validation("files", "At least one file is required")
	}
	if len(files) > MaxUploadFiles {
		return nil, utils.Validation("files", fmt.Sprintf("At most %d files can be uploaded at once", MaxUploadFiles))
	}
	for _, fh := range files {
		if err := s.checkFile(fh); err != nil {
			return nil, err
		}
	}

	assets := make([]media.Asset, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, fh := range files {
		i, fh := i, fh
		g.Go(func() error {
			f, err := fh.Open()
			if err != nil {
				return fmt.Errorf("open %q: %w", fh.Filename, err)
			}
			defer f.Close()

			asset, err := s.uploader.Upload(gctx, fh.Filename, f)
			if err != nil {
				return fmt.Errorf("upload %q: %w", fh.Filename, err)
			}
			assets[i] = asset
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.rollback(context.WithoutCancel(ctx), assets)
		return nil, utils.Upstream(err)
	}

	out := make([]response_models.ImageDescriptor, 0, len(assets))
	for _, a := range assets {
		out = append(out, response_models.ImageDescriptor{
			URL:      a.URL,
			PublicID: a.PublicID,
			Width:    a.Width,
			Height:   a.Height,
		})
	}
	return out, nil
}

// checkFile rejects empty, oversized and non image files. The content type is
// sniffed from the bytes, not taken from the client.
func (s *UploadService) checkFile(fh *multipart.FileHeader) error {
	if fh.Size <= 0 {
		return utils.Validation("files", fmt.Sprintf("%s is empty", fh.Filename))
	}
	if s.maxFileBytes > 0 && fh.Size > s.maxFileBytes {
		return utils.Validation("files", fmt.Sprintf("%s exceeds the %d byte limit", fh.Filename, s.maxFileBytes))
	}

	f, err := fh.Open()
	if err != nil {
		return utils.Validation("files", fmt.Sprintf("%s could not be read", fh.Filename))
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return utils.Validation("files", fmt.Sprintf("%s could not be read", fh.Filename))
	}
	if !strings.HasPrefix(http.DetectContentType(head[:n]), "image/") {
		return utils.Validation("files", fmt.Sprintf("%s is not an image", fh.Filename))
	}
	return nil
}

func (s *UploadService) rollback(ctx context.Context, assets []media.Asset) {
	for _, a := range assets {
		if a.PublicID == "" {
			continue
		}
		if err := s.uploader.Delete(ctx, a.PublicID); err != nil {
			zap.L().Warn("Failed to delete uploaded image after failed batch",
				zap.String("public_id", a.PublicID),
				zap.Error(err),
			)
		}
	}
}
