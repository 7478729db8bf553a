package server

import (
	"fmt"
	"log/slog"

	"github.com/openlms/editorconf/internal/server/middleware/reqlog"
	"github.com/openlms/editorconf/internal/server/middleware/requestid"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// Routes builds the HTTP route table. Middleware order: request-id first so
// the request logger can report it.
func Routes(provider AggregatorProvider, handler slog.Handler) (httpserver.Routes, error) {
	logger := slog.New(handler)
	requestLogger := reqlog.New(handler)

	configRoute, err := httpserver.NewRouteFromHandlerFunc(
		"configuration",
		PathConfiguration,
		NewConfigurationHandler(provider, logger.WithGroup("http")).ServeHTTP,
		requestid.Middleware(),
		requestLogger.Middleware(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create configuration route: %w", err)
	}

	healthzRoute, err := httpserver.NewRouteFromHandlerFunc(
		"healthz",
		PathHealthz,
		HealthzHandler,
		requestid.Middleware(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create healthz route: %w", err)
	}

	return httpserver.Routes{*configRoute, *healthzRoute}, nil
}
