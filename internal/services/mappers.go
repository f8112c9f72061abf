package services

import (
	"github.com/google/uuid"

	dbm "tourly/internal/models/db_models"
	resp "tourly/internal/models/response_models"
)

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func toCategoryResponse(c *dbm.AttractionCategory, attractionCount int64) resp.Category {
	return resp.Category{
		ID:              c.ID.String(),
		Name:            c.Name,
		Description:     c.Description,
		Color:           c.Color,
		AttractionCount: attractionCount,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func toReviewResponse(r *dbm.Review) resp.Review {
	out := resp.Review{
		ID:           r.ID.String(),
		UserID:       r.UserID.String(),
		HotelID:      uuidString(r.HotelID),
		AttractionID: uuidString(r.AttractionID),
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
	}
	if r.Hotel != nil {
		out.Hotel = &resp.ListingSummary{
			ID:       r.Hotel.ID.String(),
			Name:     r.Hotel.Name,
			Location: r.Hotel.Location,
			ImageURL: r.Hotel.ImageURL,
		}
	}
	if r.Attraction != nil {
		out.Attraction = &resp.ListingSummary{
			ID:       r.Attraction.ID.String(),
			Name:     r.Attraction.Name,
			Location: r.Attraction.Location,
			ImageURL: r.Attraction.ImageURL,
		}
	}
	return out
}

func toReviewResponses(reviews []dbm.Review) []resp.Review {
	out := make([]resp.Review, 0, len(reviews))
	for i := range reviews {
		out = append(out, toReviewResponse(&reviews[i]))
	}
	return out
}

func toAttractionResponse(a *dbm.Attraction) resp.Attraction {
	out := resp.Attraction{
		ID:             a.ID.String(),
		Name:           a.Name,
		Description:    a.Description,
		Location:       a.Location,
		CategoryID:     uuidString(a.CategoryID),
		ImageURL:       a.ImageURL,
		Rating:         a.Rating,
		Price:          a.Price,
		MaxVisitors:    a.MaxVisitors,
		AvailableSlots: a.AvailableSlots,
		OpeningHours:   a.OpeningHours,
		Reviews:        toReviewResponses(a.Reviews),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if a.Category != nil {
		out.Category = &resp.CategorySummary{
			ID:    a.Category.ID.String(),
			Name:  a.Category.Name,
			Color: a.Category.Color,
		}
	}
	return out
}

func toDestinationResponse(d *dbm.Destination) resp.Destination {
	return resp.Destination{
		ID:          d.ID.String(),
		Name:        d.Name,
		Description: d.Description,
		Region:      d.Region,
		ImageURL:    d.ImageURL,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toHotelResponse(h *dbm.Hotel) resp.Hotel {
	out := resp.Hotel{
		ID:             h.ID.String(),
		Name:           h.Name,
		Description:    h.Description,
		Location:       h.Location,
		DestinationID:  uuidString(h.DestinationID),
		ImageURL:       h.ImageURL,
		Rating:         h.Rating,
		PricePerNight:  h.PricePerNight,
		MaxGuests:      h.MaxGuests,
		TotalRooms:     h.TotalRooms,
		AvailableRooms: h.AvailableRooms,
		Reviews:        toReviewResponses(h.Reviews),
		CreatedAt:      h.CreatedAt,
		UpdatedAt:      h.UpdatedAt,
	}
	if h.Destination != nil {
		d := toDestinationResponse(h.Destination)
		out.Destination = &d
	}
	return out
}

func toAccountResponse(a *dbm.Account) resp.AccountResponse {
	return resp.AccountResponse{
		ID:    a.ID.String(),
		Name:  a.Name,
		Email: a.Email,
		Role:  a.Role,
	}
}
