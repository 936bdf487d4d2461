package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"cinebook/cmd/fx/account_fx"
	"cinebook/cmd/fx/booking_fx"
	"cinebook/cmd/fx/controllers_fx"
	"cinebook/cmd/fx/core_fx"
	"cinebook/cmd/fx/db_fx"
	"cinebook/cmd/fx/feedback_fx"
	"cinebook/cmd/fx/revenue_fx"
	"cinebook/cmd/fx/theater_fx"
	"cinebook/internal/api/controllers"
	"cinebook/internal/config"
	"cinebook/internal/models/db_models"
	"cinebook/internal/telemetry"
	"cinebook/pkg/middleware"
	"cinebook/pkg/utils"
)

const serviceName = "cinebook-api"

func main() {
	app := fx.New(
		core_fx.Module,
		db_fx.Module,
		account_fx.Module,
		theater_fx.Module,
		booking_fx.Module,
		revenue_fx.Module,
		feedback_fx.Module,
		controllers_fx.Module,

		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Named("fx")}
		}),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartTelemetry),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartTelemetry(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) {
	shutdown := telemetry.Setup(serviceName, cfg.OTelEndpoint, cfg.OTelInsecure, logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(engine, serviceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type routeControllers struct {
	fx.In

	Account  *controllers.AccountController
	Theater  *controllers.TheaterController
	Booking  *controllers.BookingController
	Revenue  *controllers.RevenueStatsController
	Feedback *controllers.FeedbackController
	Health   *controllers.HealthController
}

func ProvideRouter(cfg config.Config, logger *zap.Logger, tokens *utils.TokenManager, ctrls routeControllers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger.Named("http")))

	RegisterRoutes(r, tokens, ctrls)

	return r
}

func RegisterRoutes(r *gin.Engine, tokens *utils.TokenManager, ctrls routeControllers) {
	auth := middleware.JWTAuthMiddleware(tokens)

	r.GET("/healthz", ctrls.Health.Healthz)

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", ctrls.Account.Register)
	accountGroup.POST("/login", ctrls.Account.Login)

	adminGroup := r.Group("/admin", auth, middleware.RoleMiddleware(db_models.RoleAdmin))
	adminGroup.POST("/staff", ctrls.Account.CreateStaff)
	adminGroup.POST("/theaters", ctrls.Theater.CreateTheater)

	staffGroup := r.Group("/staff", auth, middleware.RoleMiddleware(db_models.RoleStaff))
	staffGroup.GET("/theaters", ctrls.Theater.ListMyTheaters)
	staffGroup.GET("/bookings", ctrls.Booking.ListTheaterBookings)
	staffGroup.PATCH("/bookings/:id/status", ctrls.Booking.UpdateBookingStatus)
	staffGroup.GET("/revenue-stats", ctrls.Revenue.GetRevenueStats)

	r.POST("/bookings", auth, ctrls.Booking.CreateBooking)

	feedbackGroup := r.Group("/feedback")
	feedbackGroup.GET("", ctrls.Feedback.ListFeedback)
	feedbackGroup.POST("", auth, ctrls.Feedback.AddFeedback)
}
