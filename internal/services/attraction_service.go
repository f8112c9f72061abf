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

type AttractionServiceInterface interface {
	ListAttractions(ctx context.Context, identity auth.Identity) ([]response_models.Attraction, error)
	GetAttraction(ctx context.Context, identity auth.Identity, id uuid.UUID) (*response_models.Attraction, error)
	CreateAttraction(ctx context.Context, identity auth.Identity, req request_models.AttractionRequest) (*response_models.Attraction, error)
	UpdateAttraction(ctx context.Context, identity auth.Identity, id uuid.UUID, req request_models.AttractionRequest) (*response_models.Attraction, error)
	DeleteAttraction(ctx context.Context, identity auth.Identity, id uuid.UUID) error
}

type AttractionService struct {
	attractionRepo repositories.AttractionRepository
	categoryRepo   repositories.CategoryRepositoryInterface
}

func NewAttractionService(attractionRepo repositories.AttractionRepository, categoryRepo repositories.CategoryRepositoryInterface) AttractionServiceInterface {
	return &AttractionService{
		attractionRepo: attractionRepo,
		categoryRepo:   categoryRepo,
	}
}

// normalizeAttraction validates req and applies defaults: rating 0 and
// available slots equal to max visitors when either is omitted.
func normalizeAttraction(req request_models.AttractionRequest) (*db_models.Attraction, error) {
	name, err := requireName("name", req.Name)
	if err != nil {
		return nil, err
	}

	rating := floatOr(req.Rating, 0)
	if err := checkRating("rating", rating); err != nil {
		return nil, err
	}
	price := floatOr(req.Price, 0)
	if err := checkNonNegativeFloat("price", price); err != nil {
		return nil, err
	}
	maxVisitors := intOr(req.MaxVisitors, 0)
	if err := checkNonNegativeInt("maxVisitors", maxVisitors); err != nil {
		return nil, err
	}
	availableSlots := intOr(req.AvailableSlots, maxVisitors)
	if err := checkNonNegativeInt("availableSlots", availableSlots); err != nil {
		return nil, err
	}
	if maxVisitors > 0 && availableSlots > maxVisitors {
		return nil, utils.Validation("availableSlots", "availableSlots must not exceed maxVisitors")
	}

	return &db_models.Attraction{
		Name:           name,
		Description:    optionalString(req.Description),
		Location:       optionalString(req.Location),
		CategoryID:     req.CategoryID,
		ImageURL:       optionalString(req.ImageURL),
		Rating:         rating,
		Price:          price,
		MaxVisitors:    maxVisitors,
		AvailableSlots: availableSlots,
		OpeningHours:   optionalString(req.OpeningHours),
	}, nil
}

func (s *AttractionService) checkCategory(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	category, err := s.categoryRepo.GetCategoryByID(ctx, *id)
	if err != nil {
		return utils.Storage(err)
	}
	if category == nil {
		return utils.Validation("categoryId", "Category does not exist")
	}
	return nil
}

func (s *AttractionService) ListAttractions(ctx context.Context, identity auth.Identity) ([]response_models.Attraction, error) {
	if err := auth.Authorize(identity, auth.OpReadPublic); err != nil {
		return nil, err
	}

	attractions, err := s.attractionRepo.ListAttractions(ctx)
	if err != nil {
		return nil, utils.Storage(err)
	}

	out := make([]response_models.Attraction, 0, len(attractions))
	for i := range attractions {
		out = append(out, toAttractionResponse(&attractions[i]))
	}
	return out, nil
}

func (s *AttractionService) GetAttraction(ctx context.Context, identity auth.Identity, id uuid.UUID) (*response_models.Attraction, error) {
	if err := auth.Authorize(identity, auth.OpReadPublic); err != nil {
		return nil, err
	}

	attraction, err := s.attractionRepo.GetAttractionByID(ctx, id)
	if err != nil {
		return nil, utils.Storage(err)
	}
	if attraction == nil {
		return nil, utils.NotFound("Attraction not found")
	}

	out := toAttractionResponse(attraction)
	return &out, nil
}

func (s *AttractionService) CreateAttraction(ctx context.Context, identity auth.Identity, req request_models.AttractionRequest) (*response_models.Attraction, error) {
	if err := auth.Authorize(identity, auth.OpWriteCatalog); err != nil {
		return nil, err
	}

	attraction, err := normalizeAttraction(req)
	if err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, attraction.CategoryID); err != nil {
		return nil, err
	}

	if err := s.attractionRepo.CreateAttraction(ctx, attraction); err != nil {
		return nil, utils.Storage(err)
	}

	return s.GetAttraction(ctx, identity, attraction.ID)
}

func (s *AttractionService) UpdateAttraction(ctx context.Context, identity auth.Identity, id uuid.UUID, req request_models.AttractionRequest) (*response_models.Attraction, error) {
	if err := auth.Authorize(identity, auth.OpWriteCatalog); err != nil {
		return nil, err
	}

	update, err := normalizeAttraction(req)
	if err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, update.CategoryID); err != nil {
		return nil, err
	}

	existing, err := s.attractionRepo.GetAttractionByID(ctx, id)
	if err != nil {
		return nil, utils.Storage(err)
	}
	if existing == nil {
		return nil, utils.NotFound("Attraction not found")
	}

	update.BaseModel = existing.BaseModel
	if req.Rating == nil {
		// reviews drive the rating once the attraction exists
		update.Rating = existing.Rating
	}

	if err := s.attractionRepo.UpdateAttraction(ctx, update); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.NotFound("Attraction not found")
		}
		return nil, utils.Storage(err)
	}

	return s.GetAttraction(ctx, identity, id)
}

func (s *AttractionService) DeleteAttraction(ctx context.Context, identity auth.Identity, id uuid.UUID) error {
	if err := auth.Authorize(identity, auth.OpWriteCatalog); err != nil {
		return err
	}

	if err := s.attractionRepo.DeleteAttraction(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return utils.NotFound("Attraction not found")
		}
		return utils.Storage(err)
	}
	return nil
}
