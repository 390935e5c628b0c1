package handlers

import (
	"errors"
	"net/http"

	bookingRepoPkg "salonbook/database/repository/booking"
	reviewRepoPkg "salonbook/database/repository/review"
	serviceRepoPkg "salonbook/database/repository/service"
	"salonbook/models"
	bookingSvc "salonbook/services/booking"
	"salonbook/services/feed"
	reviewSvc "salonbook/services/review"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandlerBundle groups the endpoint handlers and their dependencies.
type HandlerBundle struct {
	BookingSvc  bookingSvc.BookingService
	ReviewSvc   reviewSvc.ReviewService
	BookingFeed feed.Subscriber[models.Booking]
	ReviewFeed  feed.Subscriber[models.Review]
	Logger      *zap.Logger
}

// respondError maps service and repository errors onto HTTP statuses:
// not-found and rejection classes keep their specific codes, anything else
// is a transport-class failure.
func (hb *HandlerBundle) respondError(c *gin.Context, err error, context string) {
	status := http.StatusInternalServerError
	message := context

	switch {
	case errors.Is(err, serviceRepoPkg.ErrNotFound),
		errors.Is(err, bookingRepoPkg.ErrNotFound),
		errors.Is(err, reviewRepoPkg.ErrNotFound):
		status = http.StatusNotFound
		message = "not found"
	default:
		switch bookingSvc.ErrCode(err) {
		case bookingSvc.CodeInvalidInput:
			status = http.StatusBadRequest
		case bookingSvc.CodeSlotTaken, bookingSvc.CodeInvalidTransition:
			status = http.StatusConflict
		case bookingSvc.CodeNotOwner:
			status = http.StatusForbidden
		}
		switch reviewSvc.ErrCode(err) {
		case reviewSvc.CodeInvalidInput:
			status = http.StatusBadRequest
		case reviewSvc.CodeNotOwner:
			status = http.StatusForbidden
		}
	}

	if status == http.StatusInternalServerError {
		hb.Logger.Error(context, zap.Error(err))
	}
	c.JSON(status, gin.H{"error": message, "message": err.Error()})
}
