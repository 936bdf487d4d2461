package controllers_fx

import (
	"go.uber.org/fx"

	"cinebook/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewTheaterController),
	fx.Provide(controllers.NewBookingController),
	fx.Provide(controllers.NewRevenueStatsController),
	fx.Provide(controllers.NewHealthController))
