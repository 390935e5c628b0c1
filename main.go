// File: salonbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonbook/config"
	"salonbook/database"
	bookingRepoPkg "salonbook/database/repository/booking"
	reviewRepoPkg "salonbook/database/repository/review"
	serviceRepoPkg "salonbook/database/repository/service"
	"salonbook/handlers"
	"salonbook/middleware"
	"salonbook/models"
	"salonbook/routes"
	"salonbook/services/availability"
	bookingSvc "salonbook/services/booking"
	"salonbook/services/feed"
	reviewSvc "salonbook/services/review"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.Recover())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// change-feed subscribers, one per collection.
	bookingFeed := feed.NewMongoSubscriber[models.Booking](database.DB().Collection("bookings"), logger)
	reviewFeed := feed.NewMongoSubscriber[models.Review](database.DB().Collection("reviews"), logger)

	// services.
	engine := availability.NewEngine(config.SlotGrid())
	bookingService := &bookingSvc.DefaultBookingService{
		ServiceRepo: serviceRepo,
		BookingRepo: bookingRepo,
		Engine:      engine,
		Cache:       utils.GetCacheClient(),
		Logger:      logger,
	}
	reviewService := &reviewSvc.DefaultReviewService{
		Repo:     reviewRepo,
		Cache:    utils.GetCacheClient(),
		CacheTTL: time.Duration(config.AppConfig.RatingCacheTTL) * time.Second,
		Logger:   logger,
	}

	handlerBundle := &handlers.HandlerBundle{
		BookingSvc:  bookingService,
		ReviewSvc:   reviewService,
		BookingFeed: bookingFeed,
		ReviewFeed:  reviewFeed,
		Logger:      logger,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
