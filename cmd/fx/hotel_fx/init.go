package hotel_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourly/internal/repositories"
	"tourly/internal/services"
)

var Module = fx.Provide(
	provideHotelRepo, provideHotelService)

func provideHotelRepo(db *gorm.DB) repositories.HotelRepository {
	return repositories.NewHotelRepository(db)
}

func provideHotelService(hotelRepo repositories.HotelRepository, destinationRepo repositories.DestinationRepository) services.HotelServiceInterface {
	return services.NewHotelService(hotelRepo, destinationRepo)
}
