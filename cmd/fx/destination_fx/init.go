package destination_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourly/internal/repositories"
	"tourly/internal/services"
)

var Module = fx.Provide(
	provideDestinationRepo, provideDestinationService)

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideDestinationService(repo repositories.DestinationRepository) services.DestinationServiceInterface {
	return services.NewDestinationService(repo)
}
