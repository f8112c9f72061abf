package review_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourly/internal/repositories"
	"tourly/internal/services"
)

var Module = fx.Provide(
	provideReviewRepo, provideReviewService)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepositoryInterface {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(
	reviewRepo repositories.ReviewRepositoryInterface,
	hotelRepo repositories.HotelRepository,
	attractionRepo repositories.AttractionRepository,
) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, hotelRepo, attractionRepo)
}
