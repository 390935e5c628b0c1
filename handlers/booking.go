package handlers

import (
	"net/http"

	bookingSvc "salonbook/services/booking"

	"github.com/gin-gonic/gin"
)

// ListMyBookings handles GET /api/bookings.
func (hb *HandlerBundle) ListMyBookings(c *gin.Context) {
	userID := c.GetString("userID")

	bookings, err := hb.BookingSvc.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		hb.respondError(c, err, "failed to fetch bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking handles POST /api/bookings.
func (hb *HandlerBundle) CreateBooking(c *gin.Context) {
	var input bookingSvc.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "message": err.Error()})
		return
	}
	input.UserID = c.GetString("userID")

	booking, err := hb.BookingSvc.CreateBooking(c.Request.Context(), input)
	if err != nil {
		hb.respondError(c, err, "failed to create booking")
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// CancelBooking handles POST /api/bookings/:id/cancel.
func (hb *HandlerBundle) CancelBooking(c *gin.Context) {
	userID := c.GetString("userID")

	booking, err := hb.BookingSvc.CancelBooking(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		hb.respondError(c, err, "failed to cancel booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}
