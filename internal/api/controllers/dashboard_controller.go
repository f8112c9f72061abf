package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourly/internal/services"
	"tourly/pkg/auth"
	"tourly/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetSummary godoc
// @Summary Get admin summary
// @Description Catalog and account totals plus sign ups over the last 30 days
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response_models.DashboardReport
// @Failure 401 {object} utils.ErrorResponse
// @Router /admin/summary [get]
func (d *DashboardController) GetSummary(c *gin.Context, identity auth.Identity) {
	report, err := d.dashboardService.BuildSummary(c.Request.Context(), identity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, report)
}

func (d *DashboardController) Checkout(c *gin.Context, identity auth.Identity) {
	checkout, err := d.dashboardService.CheckoutContext(c.Request.Context(), identity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, checkout)
}
