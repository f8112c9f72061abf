package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"tourly/internal/models/db_models"
	"tourly/internal/models/request_models"
	"tourly/internal/models/response_models"
	"tourly/internal/repositories"
	"tourly/pkg/auth"
	"tourly/pkg/utils"
)

type HotelServiceInterface interface {
	ListHotels(ctx context.Context, identity auth.Identity) ([]response_models.Hotel, error)
	GetHotel(ctx context.Context, identity auth.Identity, id uuid.UUID) (*response_models.Hotel, error)
	CreateHotel(ctx context.Context, identity auth.Identity, req request_models.HotelRequest) (*response_models.Hotel, error)
	UpdateHotel(ctx context.Context, identity auth.Identity, id uuid.UUID, req request_models.HotelRequest) (*response_models.Hotel, error)
	DeleteHotel(ctx context.Context, identity auth.Identity, id uuid.UUID) error
}

type HotelService struct {
	hotelRepo       repositories.HotelRepository
	destinationRepo repositories.DestinationRepository
}

func NewHotelService(hotelRepo repositories.HotelRepository, destinationRepo repositories.DestinationRepository) HotelServiceInterface {
	return &HotelService{
		hotelRepo:       hotelRepo,
		destinationRepo: destinationRepo,
	}
}

// normalizeHotel validates req. Available rooms default to 0.
func normalizeHotel(req request_models.HotelRequest) (*db_models.Hotel, error) {
	name, err := requireName("name", req.Name)
	if err != nil {
		return nil, err
	}

	rating := floatOr(req.Rating, 0)
	if err := checkRating("rating", rating); err != nil {
		return nil, err
	}
	price := floatOr(req.PricePerNight, 0)
	if err := checkNonNegativeFloat("pricePerNight", price); err != nil {
		return nil, err
	}
	maxGuests := intOr(req.MaxGuests, 0)
	if err := checkNonNegativeInt("maxGuests", maxGuests); err != nil {
		return nil, err
	}
	totalRooms := intOr(req.TotalRooms, 0)
	if err := checkNonNegativeInt("totalRooms", totalRooms); err != nil {
		return nil, err
	}
	availableRooms := intOr(req.AvailableRooms, 0)
	if err := checkNonNegativeInt("availableRooms", availableRooms); err != nil {
		return nil, err
	}
	if totalRooms > 0 && availableRooms > totalRooms {
		return nil, utils.Validation("availableRooms", "availableRooms must not exceed totalRooms")
	}

	return &db_models.Hotel{
		Name:           name,
		Description:    optionalString(req.Description),
		Location:       optionalString(req.Location),
		DestinationID:  req.DestinationID,
		ImageURL:       optionalString(req.ImageURL),
		Rating:         rating,
		PricePerNight:  price,
		MaxGuests:      maxGuests,
		TotalRooms:     totalRooms,
		AvailableRooms: availableRooms,
	}, nil
}

func (s *HotelService) checkDestination(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	destination, err := s.destinationRepo.GetDestinationByID(ctx, *id)
	if err != nil {
		return utils.Storage(err)
	}
	if destination == nil {
		return utils.Validation("destinationId", "Destination does not exist")
	}
	return nil
}

func (s *HotelService) ListHotels(ctx context.Context, identity auth.Identity) ([]response_models.Hotel, error) {
	if err := auth.Authorize(identity, auth.OpReadPublic); err != nil {
		return nil, err
	}

	hotels, err := s.hotelRepo.ListHotels(ctx)
	if err != nil {
		return nil, utils.Storage(err)
	}

	out := make([]response_models.Hotel, 0, len(hotels))
	for i := range hotels {
		out = append(out, toHotelResponse(&hotels[i]))
	}
	return out, nil
}

func (s *HotelService) GetHotel(ctx context.Context, identity auth.Identity, id uuid.UUID) (*response_models.Hotel, error) {
	if err := auth.Authorize(identity, auth.OpReadPublic); err != nil {
		return nil, err
	}

	hotel, err := s.hotelRepo.GetHotelByID(ctx, id)
	if err != nil {
		return nil, utils.Storage(err)
	}
	if hotel == nil {
		return nil, utils.NotFound("Hotel not found")
	}

	out := toHotelResponse(hotel)
	return &out, nil
}

func (s *HotelService) CreateHotel(ctx context.Context, identity auth.Identity, req request_models.HotelRequest) (*response_models.Hotel, error) {
	if err := auth.Authorize(identity, auth.OpWriteCatalog); err != nil {
		return nil, err
	}

	hotel, err := normalizeHotel(req)
	if err != nil {
		return nil, err
	}
	if err := s.checkDestination(ctx, hotel.DestinationID); err != nil {
		return nil, err
	}

	if err := s.hotelRepo.CreateHotel(ctx, hotel); err != nil {
		return nil, utils.Storage(err)
	}

	return s.GetHotel(ctx, identity, hotel.ID)
}

func (s *HotelService) UpdateHotel(ctx context.Context, identity auth.Identity, id uuid.UUID, req request_models.HotelRequest) (*response_models.Hotel, error) {
	if err := auth.Authorize(identity, auth.OpWriteCatalog); err != nil {
		return nil, err
	}

	update, err := normalizeHotel(req)
	if err != nil {
		return nil, err
	}
	if err := s.checkDestination(ctx, update.DestinationID); err != nil {
		return nil, err
	}

	existing, err := s.hotelRepo.GetHotelByID(ctx, id)
	if err != nil {
		return nil, utils.Storage(err)
	}
	if existing == nil {
		return nil, utils.NotFound("Hotel not found")
	}

	update.BaseModel = existing.BaseModel
	if req.Rating == nil {
		update.Rating = existing.Rating
	}

	if err := s.hotelRepo.UpdateHotel(ctx, update); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.NotFound("Hotel not found")
		}
		return nil, utils.Storage(err)
	}

	return s.GetHotel(ctx, identity, id)
}

func (s *HotelService) DeleteHotel(ctx context.Context, identity auth.Identity, id uuid.UUID) error {
	if err := auth.Authorize(identity, auth.OpWriteCatalog); err != nil {
		return err
	}

	if err := s.hotelRepo.DeleteHotel(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return utils.NotFound("Hotel not found")
		}
		return utils.Storage(err)
	}
	return nil
}
