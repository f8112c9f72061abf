package config_fx

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tourly/internal/config"
	"tourly/pkg/logger"
)

var Module = fx.Provide(
	config.Load,
	provideServerConfig,
	provideDatabaseConfig,
	provideSessionConfig,
	provideUploadConfig,
	provideAdminConfig,
	provideLogger,
)

// provideServerConfig also fixes the gin mode before any engine is built.
func provideServerConfig(cfg *config.Config) config.ServerConfig {
	gin.SetMode(cfg.GinMode)
	return cfg.ServerConfig
}

func provideDatabaseConfig(cfg *config.Config) config.DatabaseConfig {
	return cfg.DatabaseConfig
}

func provideSessionConfig(cfg *config.Config) config.SessionConfig {
	return cfg.SessionConfig
}

func provideUploadConfig(cfg *config.Config) config.UploadConfig {
	return cfg.UploadConfig
}

func provideAdminConfig(cfg *config.Config) config.AdminConfig {
	return cfg.AdminConfig
}

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(logger.Options{
		Level:  cfg.LogConfig.Level,
		Format: cfg.LogConfig.Format,
		File:   cfg.LogConfig.File,
	})
}
