package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler logs every error handlers attached with c.Error and answers
// 500 when the handler never wrote a response.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		for _, err := range c.Errors {
			fields := []zap.Field{zap.String("path", c.Request.URL.Path), zap.Error(err.Err)}
			if msg, ok := err.Meta.(string); ok {
				fields = append(fields, zap.String("reason", msg))
			}
			log.Error("Request error", fields...)
		}
		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
	}
}
