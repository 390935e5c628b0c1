package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetServices handles GET /api/services.
func (hb *HandlerBundle) GetServices(c *gin.Context) {
	services, err := hb.BookingSvc.GetServices(c.Request.Context())
	if err != nil {
		hb.respondError(c, err, "failed to fetch services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceByID handles GET /api/services/:id.
func (hb *HandlerBundle) GetServiceByID(c *gin.Context) {
	svc, err := hb.BookingSvc.GetServiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		hb.respondError(c, err, "failed to fetch service")
		return
	}
	c.JSON(http.StatusOK, svc)
}

// GetServiceSlots handles GET /api/services/:id/slots?date=YYYY-MM-DD.
func (hb *HandlerBundle) GetServiceSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing date", "message": "date query parameter is required"})
		return
	}

	slots, err := hb.BookingSvc.AvailableSlots(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		hb.respondError(c, err, "failed to compute available slots")
		return
	}
	c.JSON(http.StatusOK, slots)
}

// GetServiceReviews handles GET /api/services/:id/reviews.
func (hb *HandlerBundle) GetServiceReviews(c *gin.Context) {
	reviews, err := hb.ReviewSvc.ServiceReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		hb.respondError(c, err, "failed to fetch reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetServiceRating handles GET /api/services/:id/rating.
func (hb *HandlerBundle) GetServiceRating(c *gin.Context) {
	avg, err := hb.ReviewSvc.AverageRating(c.Request.Context(), c.Param("id"))
	if err != nil {
		hb.respondError(c, err, "failed to compute rating")
		return
	}
	c.JSON(http.StatusOK, gin.H{"service_id": c.Param("id"), "average_rating": avg})
}
