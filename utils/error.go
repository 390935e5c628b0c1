package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recover converts an unhandled panic in the handler chain into a plain
// 500 response instead of a dropped connection. Handlers map their own
// service errors; this is the backstop for bugs.
func Recover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				GetLogger().Error("panic in handler",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":   "internal error",
					"message": "the request could not be completed",
				})
			}
		}()
		c.Next()
	}
}
