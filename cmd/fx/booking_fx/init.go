package booking_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cinebook/internal/repositories"
	"cinebook/internal/services"
)

var Module = fx.Provide(
	provideBookingRepo, provideBookingService,
)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(bookingRepo repositories.BookingRepository, theaterRepo repositories.TheaterRepository, logger *zap.Logger) services.BookingService {
	return services.NewBookingService(bookingRepo, theaterRepo, logger)
}
