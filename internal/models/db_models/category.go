package db_models

import "github.com/google/uuid"

// AttractionCategory groups attractions. Name is unique at the store level,
// which is what actually prevents concurrent duplicate inserts.
type AttractionCategory struct {
	BaseModel
	Name        string  `gorm:"uniqueIndex:idx_attraction_categories_name;not null"`
	Description *string `gorm:"type:text"`
	Color       *string
	Attractions []Attraction `gorm:"foreignKey:CategoryID"`
}

// CategoryCount is a row of the attraction-per-category aggregate.
type CategoryCount struct {
	CategoryID uuid.UUID `gorm:"column:category_id"`
	Count      int64     `gorm:"column:count"`
}
