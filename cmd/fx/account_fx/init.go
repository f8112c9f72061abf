package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourly/internal/repositories"
	"tourly/internal/services"
	"tourly/pkg/auth"
	mem "tourly/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, tokens auth.TokenConfig, revoked mem.RevokedSessionStore) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, tokens, revoked)
}
