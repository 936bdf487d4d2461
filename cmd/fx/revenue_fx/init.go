package revenue_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cinebook/internal/repositories"
	"cinebook/internal/services"
)

var Module = fx.Provide(
	provideRevenueStatsRepo, provideRevenueStatsService,
)

func provideRevenueStatsRepo(db *gorm.DB) repositories.RevenueStatsRepository {
	return repositories.NewRevenueStatsRepository(db)
}

func provideRevenueStatsService(
	theaterRepo repositories.TheaterRepository,
	statsRepo repositories.RevenueStatsRepository,
	loc *time.Location,
	logger *zap.Logger,
) services.RevenueStatsService {
	return services.NewRevenueStatsService(theaterRepo, statsRepo, loc, logger)
}
