// Package reqlog logs completed HTTP requests.
package reqlog

import (
	"log/slog"
	"time"

	"github.com/agilira/go-timecache"
	"github.com/openlms/editorconf/internal/server/middleware/requestid"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

const (
	attrTimestamp = "timestamp"
	attrMethod    = "method"
	attrPath      = "path"
	attrQuery     = "query"
	attrDuration  = "duration"
	attrRequestID = "request_id"

	logMessage = "HTTP request"
)

// Logger is a middleware that logs each request after the handler chain
// completes.
type Logger struct {
	logger *slog.Logger
}

// New creates the request logging middleware.
func New(handler slog.Handler) *Logger {
	return &Logger{
		logger: slog.New(handler).WithGroup("http"),
	}
}

// Middleware returns the middleware function. The log timestamp uses the
// cached clock; request duration is measured with the monotonic clock.
func (l *Logger) Middleware() httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		r := rp.Request()
		start := time.Now()

		rp.Next()

		l.logger.Info(logMessage,
			attrTimestamp, timecache.CachedTime(),
			attrMethod, r.Method,
			attrPath, r.URL.Path,
			attrQuery, r.URL.RawQuery,
			attrDuration, time.Since(start),
			attrRequestID, r.Header.Get(requestid.Header),
		)
	}
}
