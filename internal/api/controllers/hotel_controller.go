package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourly/internal/models/request_models"
	"tourly/internal/services"
	"tourly/pkg/auth"
	"tourly/pkg/utils"
)

type HotelController struct {
	hotelService services.HotelServiceInterface
}

func NewHotelController(hotelService services.HotelServiceInterface) *HotelController {
	return &HotelController{
		hotelService: hotelService,
	}
}

func (hc *HotelController) ListHotels(c *gin.Context, identity auth.Identity) {
	hotels, err := hc.hotelService.ListHotels(c.Request.Context(), identity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, hotels)
}

func (hc *HotelController) GetHotel(c *gin.Context, identity auth.Identity) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	hotel, err := hc.hotelService.GetHotel(c.Request.Context(), identity, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, hotel)
}

func (hc *HotelController) CreateHotel(c *gin.Context, identity auth.Identity) {
	var req request_models.HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	hotel, err := hc.hotelService.CreateHotel(c.Request.Context(), identity, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, hotel)
}

func (hc *HotelController) UpdateHotel(c *gin.Context, identity auth.Identity) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req request_models.HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	hotel, err := hc.hotelService.UpdateHotel(c.Request.Context(), identity, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, hotel)
}

func (hc *HotelController) DeleteHotel(c *gin.Context, identity auth.Identity) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := hc.hotelService.DeleteHotel(c.Request.Context(), identity, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusNoContent, nil)
}
