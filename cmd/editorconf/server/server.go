// Package server wires the settings watcher and HTTP listener together and
// runs them under the supervisor.
package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openlms/editorconf/internal/editor"
	"github.com/openlms/editorconf/internal/editor/plugins"
	"github.com/openlms/editorconf/internal/identity"
	"github.com/openlms/editorconf/internal/languages"
	"github.com/openlms/editorconf/internal/server"
	"github.com/openlms/editorconf/internal/settings"
	"github.com/openlms/editorconf/internal/settings/loader"
	"github.com/openlms/editorconf/internal/uploads"
	"github.com/robbyt/go-supervisor/supervisor"
)

// BuildAggregator assembles a complete aggregator from one settings
// document: store snapshot, file-backed collaborators, and the static
// plugin registry.
func BuildAggregator(doc *loader.Document, logger *slog.Logger) (*editor.Aggregator, error) {
	snapshot := settings.NewSnapshot(doc.Namespaces)

	ident, err := identity.New(doc.Contexts, doc.Users)
	if err != nil {
		return nil, fmt.Errorf("failed to build identity service: %w", err)
	}

	return editor.NewAggregator(editor.AggregatorConfig{
		Store:    snapshot,
		Resolver: ident,
		Perms:    ident,
		Langs:    languages.NewCatalog(doc.Languages),
		Uploads:  uploads.New(snapshot),
		Status:   plugins.NewStatus(snapshot),
		Registry: plugins.DefaultRegistry(),
		Logger:   logger,
	})
}

// Run starts the editorconf server: a settings file watcher that rebuilds
// the aggregator on every change, and the HTTP listener serving it. Blocks
// until the context is canceled.
func Run(
	ctx context.Context,
	logger *slog.Logger,
	settingsPath string,
	listenAddr string,
) error {
	logHandler := logger.Handler()

	provider := server.NewSwappableAggregator(nil)

	watcher, err := settings.NewWatcher(
		settingsPath,
		func(doc *loader.Document) error {
			agg, err := BuildAggregator(doc, logger.WithGroup("aggregator"))
			if err != nil {
				return err
			}
			provider.Swap(agg)
			return nil
		},
		settings.WithLogHandler(logHandler),
	)
	if err != nil {
		return fmt.Errorf("failed to create settings watcher: %w", err)
	}

	routes, err := server.Routes(provider, logHandler)
	if err != nil {
		return fmt.Errorf("failed to build routes: %w", err)
	}

	httpRunner, err := server.NewRunner(listenAddr, routes, server.DefaultTimeouts(), logHandler)
	if err != nil {
		return fmt.Errorf("failed to create HTTP runner: %w", err)
	}

	super, err := supervisor.New(
		supervisor.WithContext(ctx),
		supervisor.WithLogHandler(logHandler),
		supervisor.WithRunnables(watcher, httpRunner),
	)
	if err != nil {
		return fmt.Errorf("failed to create supervisor: %w", err)
	}
	if err := super.Run(); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}

	logger.Info("Server shutdown complete")
	return nil
}
