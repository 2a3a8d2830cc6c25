package routes

import (
	"net/http"
	"time"

	"hostly/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the handlers routes are built from.
type HandlerBundle struct {
	Availability *handlers.AvailabilityHandler
	Booking      *handlers.BookingHandler
	Host         *handlers.HostHandler
	Packages     *handlers.PackageHandler
}

// RegisterHostRoutes registers host profile and settings endpoints.
func RegisterHostRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/hosts")
	{
		// Public booking-page endpoints.
		api.GET("/slug/:slug", hb.Host.GetPublicProfile)
		api.GET("/:id/availability", hb.Availability.GetAvailableSlots)

		// Host settings.
		api.PATCH("/:id/profile", hb.Host.UpdateProfile)
		api.PUT("/:id/bookable-hours", hb.Host.UpdateBookableHours)
		api.PUT("/:id/google-credential", hb.Host.UpdateGoogleCredential)

		// Package management.
		api.POST("/:id/packages", hb.Packages.CreatePackage)
		api.GET("/:id/packages", hb.Packages.ListPackages)
		api.PATCH("/:id/packages/:packageId", hb.Packages.UpdatePackage)
		api.DELETE("/:id/packages/:packageId", hb.Packages.DeactivatePackage)
	}
}

// RegisterBookingRoutes sets up the booking commit endpoint.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHostRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
