package response_models

import "time"

type Category struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	Color           *string   `json:"color"`
	AttractionCount int64     `json:"attractionCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type CategorySummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

type Attraction struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Description    *string          `json:"description"`
	Location       *string          `json:"location"`
	CategoryID     *string          `json:"categoryId"`
	Category       *CategorySummary `json:"category,omitempty"`
	ImageURL       *string          `json:"imageUrl"`
	Rating         float64          `json:"rating"`
	Price          float64          `json:"price"`
	MaxVisitors    int              `json:"maxVisitors"`
	AvailableSlots int              `json:"availableSlots"`
	OpeningHours   *string          `json:"openingHours"`
	Reviews        []Review         `json:"reviews"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

type Destination struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Region      *string   `json:"region"`
	ImageURL    *string   `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Hotel struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Description    *string      `json:"description"`
	Location       *string      `json:"location"`
	DestinationID  *string      `json:"destinationId"`
	Destination    *Destination `json:"destination"`
	ImageURL       *string      `json:"imageUrl"`
	Rating         float64      `json:"rating"`
	PricePerNight  float64      `json:"pricePerNight"`
	MaxGuests      int          `json:"maxGuests"`
	TotalRooms     int          `json:"totalRooms"`
	AvailableRooms int          `json:"availableRooms"`
	Reviews        []Review     `json:"reviews"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// ListingSummary is the short form of a hotel or attraction nested in a review.
type ListingSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location *string `json:"location"`
	ImageURL *string `json:"imageUrl"`
}

type Review struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	HotelID      *string         `json:"hotelId"`
	AttractionID *string         `json:"attractionId"`
	Rating       int             `json:"rating"`
	Comment      *string         `json:"comment"`
	Hotel        *ListingSummary `json:"hotel,omitempty"`
	Attraction   *ListingSummary `json:"attraction,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type ImageDescriptor struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}
