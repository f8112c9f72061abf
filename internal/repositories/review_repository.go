package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tourly/internal/models/db_models"
)

type ReviewRepositoryInterface interface {
	// CreateReview stores the review and refreshes the average rating of the
	// reviewed hotel or attraction in the same transaction.
	CreateReview(ctx context.Context, review *db_models.Review) error
	ListReviewsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Review, error)
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) CreateReview(ctx context.Context, review *db_models.Review) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Hotel", "Attraction").Create(review).Error; err != nil {
			return err
		}

		switch {
		case review.HotelID != nil:
			return refreshRating(tx, &db_models.Hotel{}, "hotel_id", *review.HotelID)
		case review.AttractionID != nil:
			return refreshRating(tx, &db_models.Attraction{}, "attraction_id", *review.AttractionID)
		}
		return nil
	})
	return translateError(err)
}

func refreshRating(tx *gorm.DB, model interface{}, column string, id uuid.UUID) error {
	var avg float64
	err := tx.Model(&db_models.Review{}).
		Select("COALESCE(AVG(rating), 0)").
		Where(column+" = ?", id).
		Scan(&avg).Error
	if err != nil {
		return err
	}
	return tx.Model(model).Where("id = ?", id).Update("rating", avg).Error
}

// ListReviewsByUser only ever returns rows owned by userID.
func (r *ReviewRepository) ListReviewsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).
		Preload("Hotel").
		Preload("Attraction").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
