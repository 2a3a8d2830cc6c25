// File: hostly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hostly/config"
	"hostly/database"
	bookingRepo "hostly/database/repository/booking"
	hostRepo "hostly/database/repository/host"
	packageRepo "hostly/database/repository/packages"
	"hostly/handlers"
	"hostly/middleware"
	"hostly/routes"
	"hostly/services/availability"
	"hostly/services/booking"
	hostsvc "hostly/services/host"
	"hostly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	hosts := hostRepo.NewMongoHostRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	packages := packageRepo.NewMongoPackageRepo()

	if err := hosts.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure host indexes: %v", err)
	}
	if err := bookings.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	// services.
	busyCache := availability.NewRedisBusyCache(utils.GetCacheClient())
	calendarSource := availability.NewGoogleCalendarSource(
		config.AppConfig.GoogleClientID,
		config.AppConfig.GoogleClientSecret,
	)

	engine := &availability.DefaultEngine{
		Hosts:    hosts,
		Bookings: bookings,
		Calendar: calendarSource,
		Cache:    busyCache,
		Cfg: availability.Config{
			MinLeadTime:  config.BookingLeadTime(),
			CacheTTL:     config.GcalCacheTTL(),
			FetchTimeout: config.GcalFetchTimeout(),
		},
	}

	bookingService := &booking.DefaultBookingService{
		Repo:  bookings,
		Hosts: hosts,
		Cache: busyCache,
	}

	hostService := &hostsvc.DefaultHostService{
		Repo: hosts,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(engine),
		Booking:      handlers.NewBookingHandler(bookingService),
		Host:         handlers.NewHostHandler(hostService, packages),
		Packages:     handlers.NewPackageHandler(packages),
	}
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
