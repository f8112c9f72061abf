package upload_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tourly/internal/config"
	"tourly/internal/services"
	"tourly/pkg/media"
)

var Module = fx.Provide(
	provideUploader, provideUploadService)

// provideUploader falls back to media.Disabled when CLOUDINARY_URL is unset.
func provideUploader(cfg config.UploadConfig, logger *zap.Logger) (media.Uploader, error) {
	if cfg.CloudinaryURL == "" {
		logger.Warn("CLOUDINARY_URL is not set; image uploads are disabled")
		return media.Disabled{}, nil
	}
	return media.NewCloudinary(cfg.CloudinaryURL, cfg.Folder)
}

func provideUploadService(uploader media.Uploader, cfg config.UploadConfig) services.UploadServiceInterface {
	return services.NewUploadService(uploader, cfg.MaxFileBytes)
}
