package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tourly/internal/models/db_models"
)

type CategoryRepositoryInterface interface {
	CreateCategory(ctx context.Context, category *db_models.AttractionCategory) error
	UpdateCategory(ctx context.Context, category *db_models.AttractionCategory) error
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*db_models.AttractionCategory, error)
	GetCategoryByName(ctx context.Context, name string) (*db_models.AttractionCategory, error)
	ListCategories(ctx context.Context) ([]db_models.AttractionCategory, error)
	CountAttractionsByCategory(ctx context.Context) (map[uuid.UUID]int64, error)
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &CategoryRepository{db: db}
}

type CategoryRepository struct {
	db *gorm.DB
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, category *db_models.AttractionCategory) error {
	return translateError(r.db.WithContext(ctx).Create(category).Error)
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, category *db_models.AttractionCategory) error {
	result := r.db.WithContext(ctx).
		Model(category).
		Select("Name", "Description", "Color", "UpdatedAt").
		Updates(category)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*db_models.AttractionCategory, error) {
	var category db_models.AttractionCategory
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// GetCategoryByName matches case-sensitively.
func (r *CategoryRepository) GetCategoryByName(ctx context.Context, name string) (*db_models.AttractionCategory, error) {
	var category db_models.AttractionCategory
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) ListCategories(ctx context.Context) ([]db_models.AttractionCategory, error) {
	var categories []db_models.AttractionCategory
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) CountAttractionsByCategory(ctx context.Context) (map[uuid.UUID]int64, error) {
	var rows []db_models.CategoryCount
	err := r.db.WithContext(ctx).
		Model(&db_models.Attraction{}).
		Select("category_id, COUNT(*) AS count").
		Where("category_id IS NOT NULL").
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Count
	}
	return counts, nil
}
