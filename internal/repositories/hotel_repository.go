package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tourly/internal/models/db_models"
)

type HotelRepository interface {
	CreateHotel(ctx context.Context, hotel *db_models.Hotel) error
	UpdateHotel(ctx context.Context, hotel *db_models.Hotel) error
	DeleteHotel(ctx context.Context, id uuid.UUID) error

	GetHotelByID(ctx context.Context, id uuid.UUID) (*db_models.Hotel, error)
	ListHotels(ctx context.Context) ([]db_models.Hotel, error)
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

var hotelColumns = []string{
	"Name", "Description", "Location", "DestinationID", "ImageURL", "Rating",
	"PricePerNight", "MaxGuests", "TotalRooms", "AvailableRooms", "UpdatedAt",
}

func (r *hotelRepository) CreateHotel(ctx context.Context, hotel *db_models.Hotel) error {
	return translateError(r.db.WithContext(ctx).Omit("Destination", "Reviews").Create(hotel).Error)
}

func (r *hotelRepository) UpdateHotel(ctx context.Context, hotel *db_models.Hotel) error {
	result := r.db.WithContext(ctx).
		Model(hotel).
		Select(hotelColumns).
		Updates(hotel)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *hotelRepository) DeleteHotel(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&db_models.Hotel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *hotelRepository) GetHotelByID(ctx context.Context, id uuid.UUID) (*db_models.Hotel, error) {
	var hotel db_models.Hotel
	err := r.db.WithContext(ctx).
		Preload("Destination").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("id = ?", id).
		First(&hotel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) ListHotels(ctx context.Context) ([]db_models.Hotel, error) {
	var hotels []db_models.Hotel
	err := r.db.WithContext(ctx).
		Preload("Destination").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Order("created_at DESC").
		Find(&hotels).Error
	if err != nil {
		return nil, err
	}
	return hotels, nil
}
