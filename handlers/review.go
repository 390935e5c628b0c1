package handlers

import (
	"net/http"

	reviewSvc "salonbook/services/review"

	"github.com/gin-gonic/gin"
)

// SubmitReview handles POST /api/reviews.
func (hb *HandlerBundle) SubmitReview(c *gin.Context) {
	var input reviewSvc.SubmitReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "message": err.Error()})
		return
	}
	input.UserID = c.GetString("userID")

	review, err := hb.ReviewSvc.SubmitReview(c.Request.Context(), input)
	if err != nil {
		hb.respondError(c, err, "failed to submit review")
		return
	}
	c.JSON(http.StatusCreated, review)
}

// UpdateReview handles PUT /api/reviews/:id.
func (hb *HandlerBundle) UpdateReview(c *gin.Context) {
	var input reviewSvc.UpdateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "message": err.Error()})
		return
	}
	userID := c.GetString("userID")

	review, err := hb.ReviewSvc.UpdateReview(c.Request.Context(), c.Param("id"), userID, input)
	if err != nil {
		hb.respondError(c, err, "failed to update review")
		return
	}
	c.JSON(http.StatusOK, review)
}

// DeleteReview handles DELETE /api/reviews/:id.
func (hb *HandlerBundle) DeleteReview(c *gin.Context) {
	userID := c.GetString("userID")

	if err := hb.ReviewSvc.DeleteReview(c.Request.Context(), c.Param("id"), userID); err != nil {
		hb.respondError(c, err, "failed to delete review")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListMyReviews handles GET /api/reviews/mine.
func (hb *HandlerBundle) ListMyReviews(c *gin.Context) {
	userID := c.GetString("userID")

	reviews, err := hb.ReviewSvc.UserReviews(c.Request.Context(), userID)
	if err != nil {
		hb.respondError(c, err, "failed to fetch reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}
