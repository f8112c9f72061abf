package db_models

import "github.com/google/uuid"

type Hotel struct {
	BaseModel
	Name           string     `gorm:"not null"`
	Description    *string    `gorm:"type:text"`
	Location       *string
	DestinationID  *uuid.UUID `gorm:"type:uuid;index"`
	Destination    *Destination
	ImageURL       *string
	Rating         float64 `gorm:"not null;default:0"`
	PricePerNight  float64 `gorm:"not null;default:0"`
	MaxGuests      int     `gorm:"not null;default:0"`
	TotalRooms     int     `gorm:"not null;default:0"`
	AvailableRooms int     `gorm:"not null;default:0"`

	Reviews []Review `gorm:"foreignKey:HotelID"`
}
