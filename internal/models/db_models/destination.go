package db_models

type Destination struct {
	BaseModel
	Name        string  `gorm:"uniqueIndex:idx_destinations_name;not null"`
	Description *string `gorm:"type:text"`
	Region      *string
	ImageURL    *string
	Hotels      []Hotel `gorm:"foreignKey:DestinationID"`
}
