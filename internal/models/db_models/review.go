package db_models

import "github.com/google/uuid"

// Review targets exactly one of a hotel or an attraction.
type Review struct {
	BaseModel
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	HotelID      *uuid.UUID `gorm:"type:uuid;index"`
	Hotel        *Hotel
	AttractionID *uuid.UUID `gorm:"type:uuid;index"`
	Attraction   *Attraction
	Rating       int     `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	Comment      *string `gorm:"type:text"`
}
