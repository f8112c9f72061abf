package services

import (
	"context"
	"errors"

	"tourly/internal/models/db_models"
	"tourly/internal/models/request_models"
	"tourly/internal/models/response_models"
	"tourly/internal/repositories"
	"tourly/pkg/auth"
	"tourly/pkg/utils"
)

type DestinationServiceInterface interface {
	ListDestinations(ctx context.Context, identity auth.Identity) ([]response_models.Destination, error)
	CreateDestination(ctx context.Context, identity auth.Identity, req request_models.DestinationRequest) (*response_models.Destination, error)
}

type DestinationService struct {
	repo repositories.DestinationRepository
}

func NewDestinationService(repo repositories.DestinationRepository) DestinationServiceInterface {
	return &DestinationService{repo: repo}
}

func (s *DestinationService) ListDestinations(ctx context.Context, identity auth.Identity) ([]response_models.Destination, error) {
	if err := auth.Authorize(identity, auth.OpReadPublic); err != nil {
		return nil, err
	}

	destinations, err := s.repo.ListDestinations(ctx)
	if err != nil {
		return nil, utils.Storage(err)
	}

	out := make([]response_models.Destination, 0, len(destinations))
	for i := range destinations {
		out = append(out, toDestinationResponse(&destinations[i]))
	}
	return out, nil
}

func (s *DestinationService) CreateDestination(ctx context.Context, identity auth.Identity, req request_models.DestinationRequest) (*response_models.Destination, error) {
	if err := auth.Authorize(identity, auth.OpWriteCatalog); err != nil {
		return nil, err
	}

	name, err := requireName("name", req.Name)
	if err != nil {
		return nil, err
	}

	destination := &db_models.Destination{
		Name:        name,
		Description: optionalString(req.Description),
		Region:      optionalString(req.Region),
		ImageURL:    optionalString(req.ImageURL),
	}
	if err := s.repo.InsertTx(destination, ctx); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, utils.Conflict("name", utils.MsgDestinationExist)
		}
		return nil, utils.Storage(err)
	}

	out := toDestinationResponse(destination)
	return &out, nil
}
