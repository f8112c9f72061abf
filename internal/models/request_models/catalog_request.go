package request_models

import "github.com/google/uuid"

// Optional strings are pointers so an omitted field and an empty one can be
// told apart before normalization folds both into NULL.

type CategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

type AttractionRequest struct {
	Name           string     `json:"name"`
	Description    *string    `json:"description"`
	Location       *string    `json:"location"`
	CategoryID     *uuid.UUID `json:"categoryId"`
	ImageURL       *string    `json:"imageUrl"`
	Rating         *float64   `json:"rating"`
	Price          *float64   `json:"price"`
	MaxVisitors    *int       `json:"maxVisitors"`
	AvailableSlots *int       `json:"availableSlots"`
	OpeningHours   *string    `json:"openingHours"`
}

type HotelRequest struct {
	Name           string     `json:"name"`
	Description    *string    `json:"description"`
	Location       *string    `json:"location"`
	DestinationID  *uuid.UUID `json:"destinationId"`
	ImageURL       *string    `json:"imageUrl"`
	Rating         *float64   `json:"rating"`
	PricePerNight  *float64   `json:"pricePerNight"`
	MaxGuests      *int       `json:"maxGuests"`
	TotalRooms     *int       `json:"totalRooms"`
	AvailableRooms *int       `json:"availableRooms"`
}

type DestinationRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Region      *string `json:"region"`
	ImageURL    *string `json:"imageUrl"`
}

type ReviewRequest struct {
	HotelID      *uuid.UUID `json:"hotelId"`
	AttractionID *uuid.UUID `json:"attractionId"`
	Rating       int        `json:"rating"`
	Comment      *string    `json:"comment"`
}
