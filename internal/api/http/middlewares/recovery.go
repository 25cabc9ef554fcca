package middlewares

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// statusError — ошибка, знающая свой HTTP-статус.
type statusError interface {
	HTTPStatus() int
}

// Recovery — последний рубеж: паника в обработчике превращается в JSON {"error": ...}
// со статусом ошибки (если она его несёт) или 500.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		status := http.StatusInternalServerError
		msg := "Internal server error"
		if err, ok := recovered.(error); ok {
			var se statusError
			if errors.As(err, &se) {
				status = se.HTTPStatus()
			}
			if err.Error() != "" {
				msg = err.Error()
			}
		}
		log.Error("panic recovered", "error", recovered, "method", c.Request.Method, "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(status, gin.H{"error": msg})
	})
}
