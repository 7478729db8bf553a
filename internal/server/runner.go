package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openlms/editorconf/internal/server/finitestate"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"
)

// Interface guards
var (
	_ supervisor.Runnable  = (*Runner)(nil)
	_ supervisor.Stateable = (*Runner)(nil)
)

// TimeoutOptions contains timeout configuration for the HTTP listener.
type TimeoutOptions struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	DrainTimeout time.Duration
}

// DefaultTimeouts are applied when no timeouts are configured.
func DefaultTimeouts() TimeoutOptions {
	return TimeoutOptions{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		DrainTimeout: 5 * time.Second,
	}
}

// serverImplementation abstracts the underlying HTTP server sub-runnable.
type serverImplementation interface {
	Run(ctx context.Context) error
	Stop()
}

// Runner serves the configuration API. Its lifecycle state is tracked with
// a finite state machine so the supervisor and tests can observe
// transitions.
type Runner struct {
	address  string
	routes   httpserver.Routes
	timeouts TimeoutOptions

	server serverImplementation
	fsm    finitestate.Machine
	logger *slog.Logger
}

// NewRunner creates the HTTP listener runnable.
func NewRunner(
	address string,
	routes httpserver.Routes,
	timeouts TimeoutOptions,
	handler slog.Handler,
) (*Runner, error) {
	if address == "" {
		return nil, fmt.Errorf("listen address is required")
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("at least one route is required")
	}
	if handler == nil {
		handler = slog.Default().Handler()
	}

	machine, err := finitestate.New(handler)
	if err != nil {
		return nil, fmt.Errorf("failed to create state machine: %w", err)
	}

	r := &Runner{
		address:  address,
		routes:   routes,
		timeouts: timeouts,
		fsm:      machine,
		logger:   slog.New(handler).WithGroup("httpserver"),
	}

	if err := r.initializeRunner(); err != nil {
		return nil, fmt.Errorf("failed to initialize HTTP runner: %w", err)
	}

	return r, nil
}

// initializeRunner creates the underlying httpserver.Runner.
func (r *Runner) initializeRunner() error {
	configCallback := func() (*httpserver.Config, error) {
		options := []httpserver.ConfigOption{}
		if r.timeouts.ReadTimeout > 0 {
			options = append(options, httpserver.WithReadTimeout(r.timeouts.ReadTimeout))
		}
		if r.timeouts.WriteTimeout > 0 {
			options = append(options, httpserver.WithWriteTimeout(r.timeouts.WriteTimeout))
		}
		if r.timeouts.IdleTimeout > 0 {
			options = append(options, httpserver.WithIdleTimeout(r.timeouts.IdleTimeout))
		}
		if r.timeouts.DrainTimeout > 0 {
			options = append(options, httpserver.WithDrainTimeout(r.timeouts.DrainTimeout))
		}

		config, err := httpserver.NewConfig(r.address, r.routes, options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP server config: %w", err)
		}
		return config, nil
	}

	runner, err := httpserver.NewRunner(httpserver.WithConfigCallback(configCallback))
	if err != nil {
		return fmt.Errorf("failed to create HTTP server runner: %w", err)
	}

	r.server = runner
	return nil
}

// String returns a unique identifier for this runnable.
func (r *Runner) String() string {
	return fmt.Sprintf("server.Runner[%s]", r.address)
}

// Run starts the listener and blocks until the context is canceled or the
// server fails.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.fsm.Transition(finitestate.StatusBooting); err != nil {
		return err
	}

	r.logger.Info("Starting HTTP listener", "address", r.address, "routes", len(r.routes))
	if err := r.fsm.Transition(finitestate.StatusRunning); err != nil {
		return err
	}

	err := r.server.Run(ctx)
	if err != nil {
		r.setStateError()
		return fmt.Errorf("HTTP listener failed: %w", err)
	}

	if !r.fsm.TransitionBool(finitestate.StatusStopping) {
		r.setStateError()
		return nil
	}
	if err := r.fsm.Transition(finitestate.StatusStopped); err != nil {
		r.setStateError()
	}
	return nil
}

// Stop signals the listener to shut down.
func (r *Runner) Stop() {
	r.logger.Info("Stopping HTTP listener", "address", r.address)
	// Run observes the stop via the sub-runnable and walks the state
	// machine to Stopped.
	r.server.Stop()
}

// GetState returns the current lifecycle state.
func (r *Runner) GetState() string {
	return r.fsm.GetState()
}

// IsRunning reports whether the listener is serving traffic.
func (r *Runner) IsRunning() bool {
	return r.fsm.GetState() == finitestate.StatusRunning
}

// GetStateChan returns a channel emitting lifecycle states.
func (r *Runner) GetStateChan(ctx context.Context) <-chan string {
	return r.fsm.GetStateChan(ctx)
}

func (r *Runner) setStateError() {
	if err := r.fsm.SetState(finitestate.StatusError); err != nil {
		r.logger.Error("Failed to set error state", "error", err)
	}
}
