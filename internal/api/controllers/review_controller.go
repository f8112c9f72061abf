package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourly/internal/models/request_models"
	"tourly/internal/services"
	"tourly/pkg/auth"
	"tourly/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// ListMyReviews godoc
// @Summary List the caller's reviews
// @Description Reviews written by the signed in user, newest first, with the reviewed hotel or attraction
// @Tags Reviews
// @Produce json
// @Success 200 {array} response_models.Review
// @Failure 401 {object} utils.ErrorResponse
// @Router /user/reviews [get]
func (r *ReviewController) ListMyReviews(c *gin.Context, identity auth.Identity) {
	reviews, err := r.reviewService.ListUserReviews(c.Request.Context(), identity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, reviews)
}

func (r *ReviewController) CreateReview(c *gin.Context, identity auth.Identity) {
	var req request_models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	review, err := r.reviewService.CreateReview(c.Request.Context(), identity, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, review)
}
