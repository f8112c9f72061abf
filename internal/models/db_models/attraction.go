package db_models

import "github.com/google/uuid"

type Attraction struct {
	BaseModel
	Name           string  `gorm:"not null"`
	Description    *string `gorm:"type:text"`
	Location       *string
	CategoryID     *uuid.UUID `gorm:"type:uuid;index"`
	Category       *AttractionCategory
	ImageURL       *string
	Rating         float64 `gorm:"not null;default:0"`
	Price          float64 `gorm:"not null;default:0"`
	MaxVisitors    int     `gorm:"not null;default:0"`
	AvailableSlots int     `gorm:"not null;default:0"`
	OpeningHours   *string

	Reviews []Review `gorm:"foreignKey:AttractionID"`
}
