package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourly/internal/models/request_models"
	"tourly/internal/services"
	"tourly/pkg/auth"
	"tourly/pkg/utils"
)

type AttractionController struct {
	attractionService services.AttractionServiceInterface
}

func NewAttractionController(attractionService services.AttractionServiceInterface) *AttractionController {
	return &AttractionController{
		attractionService: attractionService,
	}
}

func (ac *AttractionController) ListAttractions(c *gin.Context, identity auth.Identity) {
	attractions, err := ac.attractionService.ListAttractions(c.Request.Context(), identity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, attractions)
}

func (ac *AttractionController) GetAttraction(c *gin.Context, identity auth.Identity) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	attraction, err := ac.attractionService.GetAttraction(c.Request.Context(), identity, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, attraction)
}

func (ac *AttractionController) CreateAttraction(c *gin.Context, identity auth.Identity) {
	var req request_models.AttractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	attraction, err := ac.attractionService.CreateAttraction(c.Request.Context(), identity, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, attraction)
}

func (ac *AttractionController) UpdateAttraction(c *gin.Context, identity auth.Identity) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req request_models.AttractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	attraction, err := ac.attractionService.UpdateAttraction(c.Request.Context(), identity, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, attraction)
}

func (ac *AttractionController) DeleteAttraction(c *gin.Context, identity auth.Identity) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ac.attractionService.DeleteAttraction(c.Request.Context(), identity, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusNoContent, nil)
}
