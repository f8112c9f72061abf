package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tourly/internal/config"
	"tourly/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle, cfg config.DatabaseConfig, logger *zap.Logger) (*gorm.DB, error) {
	db, err := infra.OpenDatabase(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := infra.Migrate(db); err != nil {
			infra.CloseDatabase(db)
			return nil, err
		}
		logger.Info("Database schema migrated")
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			infra.CloseDatabase(db)
			return nil
		},
	})
	return db, nil
}
