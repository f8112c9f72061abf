package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tourly/internal/models/db_models"
)

type DestinationRepository interface {
	InsertTx(destination *db_models.Destination, ctx context.Context) error
	GetDestinationByID(ctx context.Context, id uuid.UUID) (*db_models.Destination, error)
	ListDestinations(ctx context.Context) ([]db_models.Destination, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (d *destinationRepository) InsertTx(destination *db_models.Destination, ctx context.Context) error {
	return translateError(d.db.WithContext(ctx).Omit("Hotels").Create(destination).Error)
}

func (d *destinationRepository) GetDestinationByID(ctx context.Context, id uuid.UUID) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&destination).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

func (d *destinationRepository) ListDestinations(ctx context.Context) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := d.db.WithContext(ctx).Order("name ASC").Find(&destinations).Error
	return destinations, err
}
