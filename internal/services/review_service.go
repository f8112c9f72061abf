package services

import (
	"context"

	"tourly/internal/models/db_models"
	"tourly/internal/models/request_models"
	"tourly/internal/models/response_models"
	"tourly/internal/repositories"
	"tourly/pkg/auth"
	"tourly/pkg/utils"
)

type ReviewServiceInterface interface {
	// ListUserReviews returns only the caller's reviews, newest first.
	ListUserReviews(ctx context.Context, identity auth.Identity) ([]response_models.Review, error)
	CreateReview(ctx context.Context, identity auth.Identity, req request_models.ReviewRequest) (*response_models.Review, error)
}

type ReviewService struct {
	reviewRepo     repositories.ReviewRepositoryInterface
	hotelRepo      repositories.HotelRepository
	attractionRepo repositories.AttractionRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepositoryInterface,
	hotelRepo repositories.HotelRepository,
	attractionRepo repositories.AttractionRepository,
) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo:     reviewRepo,
		hotelRepo:      hotelRepo,
		attractionRepo: attractionRepo,
	}
}

func (s *ReviewService) ListUserReviews(ctx context.Context, identity auth.Identity) ([]response_models.Review, error) {
	if err := auth.Authorize(identity, auth.OpReadOwnReviews); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListReviewsByUser(ctx, identity.SubjectID)
	if err != nil {
		return nil, utils.Storage(err)
	}
	return toReviewResponses(reviews), nil
}

func (s *ReviewService) CreateReview(ctx context.Context, identity auth.Identity, req request_models.ReviewRequest) (*response_models.Review, error) {
	if err := auth.Authorize(identity, auth.OpWriteReview); err != nil {
		return nil, err
	}

	if (req.HotelID == nil) == (req.AttractionID == nil) {
		return nil, utils.Validation("target", "Exactly one of hotelId or attractionId is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, utils.Validation("rating", "rating must be between 1 and 5")
	}

	if req.HotelID != nil {
		hotel, err := s.hotelRepo.GetHotelByID(ctx, *req.HotelID)
		if err != nil {
			return nil, utils.Storage(err)
		}
		if hotel == nil {
			return nil, utils.Validation("hotelId", "Hotel does not exist")
		}
	} else {
		attraction, err := s.attractionRepo.GetAttractionByID(ctx, *req.AttractionID)
		if err != nil {
			return nil, utils.Storage(err)
		}
		if attraction == nil {
			return nil, utils.Validation("attractionId", "Attraction does not exist")
		}
	}

	review := &db_models.Review{
		UserID:       identity.SubjectID,
		HotelID:      req.HotelID,
		AttractionID: req.AttractionID,
		Rating:       req.Rating,
		Comment:      optionalString(req.Comment),
	}
	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		return nil, utils.Storage(err)
	}

	out := toReviewResponse(review)
	return &out, nil
}
