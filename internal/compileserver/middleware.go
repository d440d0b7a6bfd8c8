package compileserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/openql-go/openql/internal/logger"
)

// requestLogger mirrors the teacher's requestWrapper
// (internal/server/router/middleware.go): it stamps a request ID
// (reusing the incoming X-Request-Id header when present, matching the
// teacher's own fallback), spawns a request-scoped logger, and logs
// the outcome at a level keyed off the response status.
func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.Request.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.Must(uuid.NewRandom()).String()
		}
		c.Writer.Header().Set("X-Request-Id", reqID)

		l := log.SpawnForRun(reqID)
		c.Set("logger", l)

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		evt := l.Info()
		switch {
		case status >= http.StatusInternalServerError:
			evt = l.Error()
		case status >= http.StatusBadRequest:
			evt = l.Warn()
		}
		evt.Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("status", status).
			Dur("latency", latency).
			Msg("request served")
	}
}

func loggerFromContext(c *gin.Context) *logger.Logger {
	if v, ok := c.Get("logger"); ok {
		if l, ok := v.(*logger.Logger); ok {
			return l
		}
	}
	return logger.NewLogger(logger.LoggerOptions{})
}
