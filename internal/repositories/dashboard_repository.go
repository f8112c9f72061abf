package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	dbm "tourly/internal/models/db_models"
)

type DashboardRepository interface {
	CountTotalAccounts(ctx context.Context) (int64, error)
	CountNewAccounts(ctx context.Context, since time.Time) (int64, error)
	CountCategories(ctx context.Context) (int64, error)
	CountDestinations(ctx context.Context) (int64, error)
	CountAttractions(ctx context.Context) (int64, error)
	CountHotels(ctx context.Context) (int64, error)
	CountReviews(ctx context.Context) (int64, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) count(ctx context.Context, model interface{}) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(model).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountTotalAccounts(ctx context.Context) (int64, error) {
	return r.count(ctx, &dbm.Account{})
}

func (r *dashboardRepository) CountNewAccounts(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Account{}).
		Where("created_at >= ?", since).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountCategories(ctx context.Context) (int64, error) {
	return r.count(ctx, &dbm.AttractionCategory{})
}

func (r *dashboardRepository) CountDestinations(ctx context.Context) (int64, error) {
	return r.count(ctx, &dbm.Destination{})
}

func (r *dashboardRepository) CountAttractions(ctx context.Context) (int64, error) {
	return r.count(ctx, &dbm.Attraction{})
}

func (r *dashboardRepository) CountHotels(ctx context.Context) (int64, error) {
	return r.count(ctx, &dbm.Hotel{})
}

func (r *dashboardRepository) CountReviews(ctx context.Context) (int64, error) {
	return r.count(ctx, &dbm.Review{})
}
