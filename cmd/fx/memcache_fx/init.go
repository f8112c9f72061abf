package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	mem "tourly/pkg/memcache"
)

const sweepInterval = 10 * time.Minute

var Module = fx.Provide(provideRevokedSessions)

// provideRevokedSessions also runs a sweeper so logged out sessions do not
// pile up after their tokens expire.
func provideRevokedSessions(lc fx.Lifecycle, logger *zap.Logger) mem.RevokedSessionStore {
	store := mem.NewRevokedSessions()
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ticker := time.NewTicker(sweepInterval)
				defer ticker.Stop()
				for {
					select {
					case now := <-ticker.C:
						if n := store.Sweep(now); n > 0 {
							logger.Debug("Swept revoked sessions", zap.Int("count", n))
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			close(done)
			return nil
		},
	})
	return store
}
