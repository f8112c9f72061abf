package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourly/internal/models/request_models"
	"tourly/internal/services"
	"tourly/pkg/auth"
	"tourly/pkg/utils"
)

type CategoryController struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryController(categoryService services.CategoryServiceInterface) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

// ListCategories godoc
// @Summary List attraction categories
// @Description Categories sorted by name, each with the number of attractions in it
// @Tags Categories
// @Produce json
// @Success 200 {array} response_models.Category
// @Router /attraction-categories [get]
func (cc *CategoryController) ListCategories(c *gin.Context, identity auth.Identity) {
	categories, err := cc.categoryService.ListCategories(c.Request.Context(), identity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, categories)
}

// CreateCategory godoc
// @Summary Create an attraction category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body request_models.CategoryRequest true "Category payload"
// @Success 201 {object} response_models.Category
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /attraction-categories [post]
func (cc *CategoryController) CreateCategory(c *gin.Context, identity auth.Identity) {
	var req request_models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	category, err := cc.categoryService.CreateCategory(c.Request.Context(), identity, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, category)
}

func (cc *CategoryController) UpdateCategory(c *gin.Context, identity auth.Identity) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req request_models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	category, err := cc.categoryService.UpdateCategory(c.Request.Context(), identity, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, category)
}
