package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"coworking/internal/app"
	"coworking/internal/config"
	"coworking/internal/database"
	"coworking/internal/middleware"
	"coworking/internal/modules/availability"
	"coworking/internal/modules/bookings"
	"coworking/internal/modules/catalog"
	"coworking/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load config: " + err.Error())
	}

	logger := app.NewLogger(cfg.AppEnv)
	defer logger.Sync()

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		logger.Fatal("invalid BOOKING_TIMEZONE", zap.String("time_zone", cfg.TimeZone), zap.Error(err))
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}

	bookingRepo := repository.NewBookingRepository(db)
	spaceRepo := repository.NewSpaceRepository(db)
	rulesRepo := repository.NewLocationRulesRepository(db)

	// Rules come from the location row when one exists, falling back to the
	// configured defaults.
	rulesRow := cfg.DefaultRules
	rulesRow.LocationID = cfg.LocationID
	if persisted, err := rulesRepo.GetByLocation(context.Background(), cfg.LocationID); err != nil {
		logger.Fatal("load location rules", zap.Error(err))
	} else if persisted != nil {
		rulesRow = *persisted
	}

	ruleSet, err := availability.NewRuleSet(rulesRow, loc)
	if err != nil {
		logger.Fatal("build rule set", zap.Error(err))
	}

	availabilityService, err := availability.NewService(bookingRepo, ruleSet, logger)
	if err != nil {
		logger.Fatal("build availability service", zap.Error(err))
	}
	availabilityHandler := availability.NewHandler(availabilityService)

	bookingsService := bookings.NewService(bookingRepo, availabilityService, logger)
	bookingsHandler := bookings.NewHandler(bookingsService)

	catalogService := catalog.NewService(spaceRepo, rulesRepo, availabilityService, loc, logger)
	catalogHandler := catalog.NewHandler(catalogService)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		availabilityHandler.RegisterRoutes(v1)
		bookingsHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
	}

	logger.Info("starting server",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("location_id", cfg.LocationID),
		zap.String("time_zone", cfg.TimeZone),
	)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
