package handlers

import (
	"net/http"

	bookingSvc "salonbook/services/booking"

	"github.com/gin-gonic/gin"
)

// CreateService handles POST /api/admin/services.
func (hb *HandlerBundle) CreateService(c *gin.Context) {
	var input bookingSvc.CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "message": err.Error()})
		return
	}

	svc, err := hb.BookingSvc.CreateService(c.Request.Context(), input)
	if err != nil {
		hb.respondError(c, err, "failed to create service")
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateService handles PUT /api/admin/services/:id.
func (hb *HandlerBundle) UpdateService(c *gin.Context) {
	var updates bookingSvc.UpdateServiceInput
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "message": err.Error()})
		return
	}

	svc, err := hb.BookingSvc.UpdateService(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		hb.respondError(c, err, "failed to update service")
		return
	}
	c.JSON(http.StatusOK, svc)
}

// SetServiceActive handles PUT /api/admin/services/:id/active.
func (hb *HandlerBundle) SetServiceActive(c *gin.Context) {
	var body struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "message": err.Error()})
		return
	}

	if err := hb.BookingSvc.SetServiceActive(c.Request.Context(), c.Param("id"), *body.Active); err != nil {
		hb.respondError(c, err, "failed to change service state")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "active": *body.Active})
}
