package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"tourly/cmd/fx/account_fx"
	"tourly/cmd/fx/attraction_fx"
	"tourly/cmd/fx/auth_fx"
	"tourly/cmd/fx/category_fx"
	"tourly/cmd/fx/config_fx"
	"tourly/cmd/fx/controllers_fx"
	"tourly/cmd/fx/dashboard"
	"tourly/cmd/fx/db_fx"
	"tourly/cmd/fx/destination_fx"
	"tourly/cmd/fx/hotel_fx"
	"tourly/cmd/fx/memcache_fx"
	"tourly/cmd/fx/review_fx"
	"tourly/cmd/fx/upload_fx"
	"tourly/internal/config"
	"tourly/internal/services"
)

const (
	readHeaderTimeout = 10 * time.Second
	seedTimeout       = 15 * time.Second
)

func main() {
	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		auth_fx.Module,
		account_fx.Module,
		category_fx.Module,
		attraction_fx.Module,
		hotel_fx.Module,
		destination_fx.Module,
		review_fx.Module,
		upload_fx.Module,
		dashboard.Module,
		controllers_fx.Module,

		fx.Invoke(SeedAdmin),
		fx.Invoke(StartServer),
	)

	app.Run()
}

// SeedAdmin makes sure the configured admin account exists before traffic
// is served.
func SeedAdmin(cfg config.AdminConfig, accounts services.AccountServiceInterface) error {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()
	return accounts.SeedAdmin(ctx, cfg.Name, cfg.Email, cfg.Password)
}

func StartServer(lc fx.Lifecycle, cfg config.ServerConfig, engine *gin.Engine, logger *zap.Logger, shutdowner fx.Shutdowner) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
