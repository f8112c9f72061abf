package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tourly/internal/models/db_models"
)

type AttractionRepository interface {
	CreateAttraction(ctx context.Context, attraction *db_models.Attraction) error
	UpdateAttraction(ctx context.Context, attraction *db_models.Attraction) error
	DeleteAttraction(ctx context.Context, id uuid.UUID) error

	GetAttractionByID(ctx context.Context, id uuid.UUID) (*db_models.Attraction, error)
	ListAttractions(ctx context.Context) ([]db_models.Attraction, error)
}

type attractionRepository struct {
	db *gorm.DB
}

func NewAttractionRepository(db *gorm.DB) AttractionRepository {
	return &attractionRepository{db: db}
}

var attractionColumns = []string{
	"Name", "Description", "Location", "CategoryID", "ImageURL", "Rating",
	"Price", "MaxVisitors", "AvailableSlots", "OpeningHours", "UpdatedAt",
}

func (r *attractionRepository) CreateAttraction(ctx context.Context, attraction *db_models.Attraction) error {
	return translateError(r.db.WithContext(ctx).Omit("Category", "Reviews").Create(attraction).Error)
}

func (r *attractionRepository) UpdateAttraction(ctx context.Context, attraction *db_models.Attraction) error {
	result := r.db.WithContext(ctx).
		Model(attraction).
		Select(attractionColumns).
		Updates(attraction)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *attractionRepository) DeleteAttraction(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&db_models.Attraction{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *attractionRepository) GetAttractionByID(ctx context.Context, id uuid.UUID) (*db_models.Attraction, error) {
	var attraction db_models.Attraction
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("id = ?", id).
		First(&attraction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attraction, nil
}

func (r *attractionRepository) ListAttractions(ctx context.Context) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Order("created_at DESC").
		Find(&attractions).Error
	if err != nil {
		return nil, err
	}
	return attractions, nil
}
