package routes

import (
	"time"

	"salonbook/handlers"
	"salonbook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the API surface onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", handlers.Health)

	// Public catalog and review browsing.
	services := r.Group("/api/services")
	{
		services.GET("", hb.GetServices)
		services.GET("/:id", hb.GetServiceByID)
		services.GET("/:id/slots", hb.GetServiceSlots)
		services.GET("/:id/reviews", hb.GetServiceReviews)
		services.GET("/:id/rating", hb.GetServiceRating)
	}

	// Booking actions (require authentication).
	bookings := r.Group("/api/bookings")
	bookings.Use(middleware.JWTAuthMiddleware())
	{
		bookings.GET("", hb.ListMyBookings)
		bookings.POST("", hb.CreateBooking)
		bookings.POST("/:id/cancel", hb.CancelBooking)
	}

	// Review actions (require authentication).
	reviews := r.Group("/api/reviews")
	reviews.Use(middleware.JWTAuthMiddleware())
	{
		reviews.GET("/mine", hb.ListMyReviews)
		reviews.POST("", hb.SubmitReview)
		reviews.PUT("/:id", hb.UpdateReview)
		reviews.DELETE("/:id", hb.DeleteReview)
	}

	// Catalog management (require authentication).
	admin := r.Group("/api/admin/services")
	admin.Use(middleware.JWTAuthMiddleware())
	{
		admin.POST("", hb.CreateService)
		admin.PUT("/:id", hb.UpdateService)
		admin.PUT("/:id/active", hb.SetServiceActive)
	}

	// Live scope streams.
	stream := r.Group("/api/stream")
	{
		stream.GET("/bookings", middleware.JWTAuthMiddleware(), hb.StreamMyBookings)
		stream.GET("/services/:id/reviews", hb.StreamServiceReviews)
	}
}
