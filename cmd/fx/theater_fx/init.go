package theater_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cinebook/internal/repositories"
	"cinebook/internal/services"
)

var Module = fx.Provide(
	provideTheaterRepo, provideTheaterService,
)

func provideTheaterRepo(db *gorm.DB) repositories.TheaterRepository {
	return repositories.NewTheaterRepository(db)
}

func provideTheaterService(theaterRepo repositories.TheaterRepository, accountRepo repositories.AccountRepository, logger *zap.Logger) services.TheaterService {
	return services.NewTheaterService(theaterRepo, accountRepo, logger)
}
