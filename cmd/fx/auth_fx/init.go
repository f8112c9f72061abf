package auth_fx

import (
	"go.uber.org/fx"

	"tourly/internal/config"
	"tourly/pkg/auth"
	mem "tourly/pkg/memcache"
)

var Module = fx.Provide(
	provideTokenConfig, provideResolver)

func provideTokenConfig(cfg config.SessionConfig) auth.TokenConfig {
	return auth.TokenConfig{
		SigningKey: []byte(cfg.Secret),
		Issuer:     cfg.Issuer,
		TTL:        cfg.TTL,
	}
}

func provideResolver(tokens auth.TokenConfig, cfg config.SessionConfig, revoked mem.RevokedSessionStore) *auth.Resolver {
	return auth.NewResolver(tokens, cfg.CookieName, revoked)
}
