package attraction_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourly/internal/repositories"
	"tourly/internal/services"
)

var Module = fx.Provide(
	provideAttractionRepo, provideAttractionService)

func provideAttractionRepo(db *gorm.DB) repositories.AttractionRepository {
	return repositories.NewAttractionRepository(db)
}

func provideAttractionService(attractionRepo repositories.AttractionRepository, categoryRepo repositories.CategoryRepositoryInterface) services.AttractionServiceInterface {
	return services.NewAttractionService(attractionRepo, categoryRepo)
}
