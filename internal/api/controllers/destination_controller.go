package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourly/internal/models/request_models"
	"tourly/internal/services"
	"tourly/pkg/auth"
	"tourly/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
	}
}

func (d *DestinationController) ListDestinations(c *gin.Context, identity auth.Identity) {
	destinations, err := d.destinationService.ListDestinations(c.Request.Context(), identity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, destinations)
}

func (d *DestinationController) CreateDestination(c *gin.Context, identity auth.Identity) {
	var req request_models.DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	destination, err := d.destinationService.CreateDestination(c.Request.Context(), identity, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, destination)
}
