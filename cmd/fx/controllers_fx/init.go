package controllers_fx

import (
	"go.uber.org/fx"

	"tourly/internal/api"
	"tourly/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCategoryController),
	fx.Provide(controllers.NewAttractionController),
	fx.Provide(controllers.NewHotelController),
	fx.Provide(controllers.NewDestinationController),
	fx.Provide(controllers.NewReviewController),
	fx.Provide(controllers.NewUploadController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewHealthController),
	fx.Provide(api.NewRouter))
