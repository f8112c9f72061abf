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

type CategoryServiceInterface interface {
	ListCategories(ctx context.Context, identity auth.Identity) ([]response_models.Category, error)
	CreateCategory(ctx context.Context, identity auth.Identity, req request_models.CategoryRequest) (*response_models.Category, error)
	UpdateCategory(ctx context.Context, identity auth.Identity, id uuid.UUID, req request_models.CategoryRequest) (*response_models.Category, error)
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
	}
}

func (s *CategoryService) ListCategories(ctx context.Context, identity auth.Identity) ([]response_models.Category, error) {
	if err := auth.Authorize(identity, auth.OpReadPublic); err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, utils.Storage(err)
	}
	counts, err := s.categoryRepo.CountAttractionsByCategory(ctx)
	if err != nil {
		return nil, utils.Storage(err)
	}

	out := make([]response_models.Category, 0, len(categories))
	for i := range categories {
		out = append(out, toCategoryResponse(&categories[i], counts[categories[i].ID]))
	}
	return out, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, identity auth.Identity, req request_models.CategoryRequest) (*response_models.Category, error) {
	if err := auth.Authorize(identity, auth.OpWriteCatalog); err != nil {
		return nil, err
	}

	name, err := requireName("name", req.Name)
	if err != nil {
		return nil, err
	}

	// Fast path only; the unique index decides when two requests race.
	existing, err := s.categoryRepo.GetCategoryByName(ctx, name)
	if err != nil {
		return nil, utils.Storage(err)
	}
	if existing != nil {
		return nil, utils.Conflict("name", utils.MsgCategoryExists)
	}

	category := &db_models.AttractionCategory{
		Name:        name,
		Description: optionalString(req.Description),
		Color:       optionalString(req.Color),
	}
	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, utils.Conflict("name", utils.MsgCategoryExists)
		}
		return nil, utils.Storage(err)
	}

	out := toCategoryResponse(category, 0)
	return &out, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, identity auth.Identity, id uuid.UUID, req request_models.CategoryRequest) (*response_models.Category, error) {
	if err := auth.Authorize(identity, auth.OpWriteCatalog); err != nil {
		return nil, err
	}

	name, err := requireName("name", req.Name)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, utils.Storage(err)
	}
	if category == nil {
		return nil, utils.NotFound("Category not found")
	}

	if name != category.Name {
		existing, err := s.categoryRepo.GetCategoryByName(ctx, name)
		if err != nil {
			return nil, utils.Storage(err)
		}
		if existing != nil {
			return nil, utils.Conflict("name", utils.MsgCategoryExists)
		}
	}

	category.Name = name
	category.Description = optionalString(req.Description)
	category.Color = optionalString(req.Color)

	if err := s.categoryRepo.UpdateCategory(ctx, category); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, utils.Conflict("name", utils.MsgCategoryExists)
		case errors.Is(err, repositories.ErrNotFound):
			return nil, utils.NotFound("Category not found")
		}
		return nil, utils.Storage(err)
	}

	counts, err := s.categoryRepo.CountAttractionsByCategory(ctx)
	if err != nil {
		return nil, utils.Storage(err)
	}
	out := toCategoryResponse(category, counts[category.ID])
	return &out, nil
}
