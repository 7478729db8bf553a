package settings

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/agilira/argus"
	"github.com/openlms/editorconf/internal/settings/loader"
	"github.com/robbyt/go-loglater"
	"github.com/robbyt/go-supervisor/supervisor"
)

// Interface guard: the watcher runs under the supervisor next to the HTTP
// listener.
var _ supervisor.Runnable = (*Watcher)(nil)

// ApplyFunc receives a freshly loaded and validated settings document. It is
// called once at startup and again after every file change. Returning an
// error rejects the document; the previous state stays active.
type ApplyFunc func(doc *loader.Document) error

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogHandler sets the slog handler used by the watcher.
func WithLogHandler(handler slog.Handler) Option {
	return func(w *Watcher) {
		if handler != nil {
			w.handler = handler
		}
	}
}

// WithPollInterval overrides the file polling interval.
func WithPollInterval(interval time.Duration) Option {
	return func(w *Watcher) {
		if interval > 0 {
			w.pollInterval = interval
		}
	}
}

// Watcher loads the settings file, hands documents to an ApplyFunc, and
// reloads when the file changes on disk. File change detection uses argus
// polling, so it works on network filesystems too.
type Watcher struct {
	path         string
	apply        ApplyFunc
	pollInterval time.Duration

	fileWatcher  *argus.Watcher
	handler      slog.Handler
	logger       *slog.Logger
	logCollector *loglater.LogCollector

	reloads  atomic.Uint64
	stopped  atomic.Bool
	stopOnce sync.Once
}

// NewWatcher creates a settings file watcher. The apply callback must be
// safe to call from the argus polling goroutine.
func NewWatcher(path string, apply ApplyFunc, opts ...Option) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("settings path is required")
	}
	if apply == nil {
		return nil, fmt.Errorf("apply callback is required")
	}

	w := &Watcher{
		path:         path,
		apply:        apply,
		pollInterval: 2 * time.Second,
		handler:      slog.Default().Handler(),
	}

	for _, opt := range opts {
		opt(w)
	}

	// Keep a replayable history of reload activity for diagnostics.
	w.logCollector = loglater.NewLogCollector(w.handler)
	w.logger = slog.New(w.logCollector).WithGroup("settings")

	w.fileWatcher = argus.New(argus.Config{
		PollInterval:         w.pollInterval,
		MaxWatchedFiles:      1,
		OptimizationStrategy: argus.OptimizationSingleEvent,
		ErrorHandler: func(err error, filePath string) {
			w.logger.Error("Settings file watching error", "error", err, "file", filePath)
		},
	})

	return w, nil
}

// String returns a unique identifier for this runnable.
func (w *Watcher) String() string {
	return fmt.Sprintf("settings.Watcher[%s]", w.path)
}

// Run loads the initial document, applies it, and then watches the file
// until the context is canceled. The initial load is fatal on error; later
// reload failures only log and keep the previous document active.
func (w *Watcher) Run(ctx context.Context) error {
	doc, err := loader.LoadDocument(w.path)
	if err != nil {
		return fmt.Errorf("initial settings load: %w", err)
	}
	if err := w.apply(doc); err != nil {
		return fmt.Errorf("initial settings apply: %w", err)
	}
	w.logger.Info("Settings loaded",
		"path", w.path,
		"namespaces", len(doc.Namespaces),
		"contexts", len(doc.Contexts),
		"users", len(doc.Users),
		"languages", len(doc.Languages))

	if err := w.fileWatcher.Watch(w.path, w.handleChange); err != nil {
		return fmt.Errorf("failed to watch settings file: %w", err)
	}
	if err := w.fileWatcher.Start(); err != nil {
		return fmt.Errorf("failed to start settings watcher: %w", err)
	}

	<-ctx.Done()
	w.Stop()
	return nil
}

// Stop halts file watching. The watcher cannot be restarted after Stop.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.stopped.Store(true)
		if err := w.fileWatcher.Stop(); err != nil {
			w.logger.Warn("Failed to stop settings file watcher", "error", err)
		}
		w.logger.Info("Settings watcher stopped", "reloads", w.reloads.Load())
	})
}

// Reloads returns how many reload attempts have been processed.
func (w *Watcher) Reloads() uint64 {
	return w.reloads.Load()
}

// PlaybackLogs replays the watcher's collected log history to the given
// handler.
func (w *Watcher) PlaybackLogs(handler slog.Handler) error {
	return w.logCollector.PlayLogs(handler)
}

// handleChange processes a file change event from argus.
func (w *Watcher) handleChange(event argus.ChangeEvent) {
	if w.stopped.Load() {
		return
	}

	if event.IsDelete {
		w.logger.Warn("Settings file was deleted, keeping current settings", "path", event.Path)
		return
	}

	w.reloads.Add(1)

	doc, err := loader.LoadDocument(event.Path)
	if err != nil {
		w.logger.Error("Settings reload failed, keeping current settings",
			"error", err, "path", event.Path)
		return
	}

	if err := w.apply(doc); err != nil {
		w.logger.Error("Settings apply failed, keeping current settings",
			"error", err, "path", event.Path)
		return
	}

	w.logger.Info("Settings reloaded", "path", event.Path, "reload", w.reloads.Load())
}
