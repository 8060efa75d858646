package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"barbershop/internal/config"
	"barbershop/internal/database"
	"barbershop/internal/jobs"
	"barbershop/internal/logger"
	"barbershop/internal/middleware"
	"barbershop/internal/modules/admin"
	"barbershop/internal/modules/availability"
	"barbershop/internal/modules/booking"
	"barbershop/internal/modules/catalog"
	jwtsvc "barbershop/internal/pkg/jwt"
	"barbershop/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	loc, err := cfg.Location()
	if err != nil {
		zlog.Fatal("bad business timezone", zap.Error(err))
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("database connect", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		zlog.Fatal("database migrate", zap.Error(err))
	}
	caps := database.Detect(db)

	bootstrap := repository.NewBootstrap(db, cfg.DefaultServiceDurationMinutes)
	appointmentRepo := repository.NewAppointmentRepository(db)
	barberRepo := repository.NewBarberRepository(db, bootstrap)
	serviceRepo := repository.NewServiceRepository(db, bootstrap)
	blackoutRepo := repository.NewBlackoutRepository(db)
	windowRepo := repository.NewOperatingWindowRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, 24*time.Hour)

	bookingService := booking.NewService(
		appointmentRepo, serviceRepo, barberRepo, blackoutRepo, windowRepo,
		booking.Config{
			SlotInterval:   cfg.SlotInterval(),
			Buffer:         cfg.Buffer(),
			FitWithinClose: cfg.FitWithinClose,
			Location:       loc,
			StorageTimeout: cfg.StorageTimeout,
		},
	)
	bookingHandler := booking.NewHandler(bookingService, loc)

	catalogService := catalog.NewService(serviceRepo, barberRepo, cfg.DefaultServiceDurationMinutes)
	catalogHandler := catalog.NewHandler(catalogService)

	availabilityService := availability.NewService(windowRepo, blackoutRepo, barberRepo)
	availabilityHandler := availability.NewHandler(availabilityService, loc)

	adminService := admin.NewService(adminRepo, j, caps.AdminAccounts)
	adminHandler := admin.NewHandler(adminService)

	cleanup := jobs.NewCleanup(appointmentRepo, blackoutRepo, cfg.CancelledRetentionDays, zlog)
	cr := cron.New()
	if err := cleanup.Schedule(cr); err != nil {
		zlog.Fatal("schedule cleanup", zap.Error(err))
	}
	cr.Start()
	defer cr.Stop()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.CORS(), middleware.RequestLogger(zlog))

	v1 := r.Group("/api/v1")
	{
		// public booking flow
		bookingHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		availabilityHandler.RegisterRoutes(v1)
		adminHandler.RegisterRoutes(v1)

		// admin console
		protected := v1.Group("/admin")
		protected.Use(middleware.AdminAuth(j))
		{
			bookingHandler.RegisterAdminRoutes(protected)
			catalogHandler.RegisterAdminRoutes(protected)
			availabilityHandler.RegisterAdminRoutes(protected)
		}
	}

	zlog.Info("listening", zap.String("port", cfg.AppPort))
	if err := r.Run(":" + cfg.AppPort); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
