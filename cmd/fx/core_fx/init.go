package core_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"cinebook/internal/config"
	"cinebook/pkg/logger"
	"cinebook/pkg/utils"
)

var Module = fx.Provide(
	config.Load, provideLogger, provideTokenManager, provideLocation,
)

func provideLogger(cfg config.Config) (*zap.Logger, error) {
	l, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)
	return l, nil
}

func provideTokenManager(cfg config.Config, l *zap.Logger) *utils.TokenManager {
	if cfg.JWTSecret == "" {
		l.Warn("JWT_SECRET is empty, tokens are signed with an empty key")
	}
	return utils.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
}

func provideLocation(cfg config.Config) *time.Location {
	return utils.LoadLocationOrDefault(cfg.Timezone)
}
