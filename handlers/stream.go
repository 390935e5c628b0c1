package handlers

import (
	"context"
	"errors"
	"time"

	"salonbook/models"
	"salonbook/services/feed"
	"salonbook/services/state"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const heartbeatInterval = 30 * time.Second

// streamFrame is the reactive view pushed to SSE clients: the scope's
// items, its sync status and last error, plus derived aggregates.
type streamFrame struct {
	Items         any      `json:"items"`
	Status        string   `json:"status"`
	Error         string   `json:"error,omitempty"`
	AverageRating *float64 `json:"average_rating,omitempty"`
}

// StreamMyBookings handles GET /api/stream/bookings: opens the caller's
// bookings scope (initial load + live change feed) and streams the view
// state on every change until the client disconnects.
func (hb *HandlerBundle) StreamMyBookings(c *gin.Context) {
	userID := c.GetString("userID")

	view := state.NewView(
		func(ctx context.Context) ([]models.Booking, error) {
			return hb.BookingSvc.ListUserBookings(ctx, userID)
		},
		hb.BookingFeed,
		feed.Scope{Field: "user_id", Value: userID},
		hb.Logger,
	)

	streamView(c, hb.Logger, view, func(items []models.Booking, status state.Status, err error) streamFrame {
		return newFrame(items, status, err)
	})
}

// StreamServiceReviews handles GET /api/stream/services/:id/reviews. The
// streamed frames carry the average rating recomputed from the post-apply
// collection on every change.
func (hb *HandlerBundle) StreamServiceReviews(c *gin.Context) {
	serviceID := c.Param("id")

	view := state.NewView(
		func(ctx context.Context) ([]models.Review, error) {
			return hb.ReviewSvc.ServiceReviews(ctx, serviceID)
		},
		hb.ReviewFeed,
		feed.Scope{Field: "service_id", Value: serviceID},
		hb.Logger,
	)

	streamView(c, hb.Logger, view, func(items []models.Review, status state.Status, err error) streamFrame {
		frame := newFrame(items, status, err)
		avg := state.AverageRating(items)
		frame.AverageRating = &avg
		return frame
	})
}

func newFrame[T feed.Entity](items []T, status state.Status, err error) streamFrame {
	frame := streamFrame{Items: items, Status: string(status)}
	if err != nil {
		frame.Error = err.Error()
	}
	return frame
}

// streamView runs one scope's SSE session: open, initial frame, then a
// frame per change signal, with heartbeats in between. Closing the view on
// exit unsubscribes the change feed and invalidates in-flight loads.
func streamView[T feed.Entity](c *gin.Context, logger *zap.Logger, view *state.View[T], frame func([]T, state.Status, error) streamFrame) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ctx := c.Request.Context()
	defer view.Close()

	openErr := view.Open(ctx)
	if openErr != nil && errors.Is(openErr, feed.ErrSubscriptionFailed) {
		// Reported once; the scope stays usable in load-only mode.
		logger.Warn("live feed unavailable, stream degrades to load-only", zap.Error(openErr))
		c.SSEvent("warning", gin.H{"message": "live updates unavailable"})
	}

	send := func() {
		items, status, err := view.Snapshot()
		c.SSEvent("state", frame(items, status, err))
		c.Writer.Flush()
	}
	send()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-view.Changes():
			send()
		case <-heartbeat.C:
			c.SSEvent("ping", time.Now().Unix())
			c.Writer.Flush()
		}
	}
}
