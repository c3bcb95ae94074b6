package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mkessel/todo-api/internal/config"
	"github.com/mkessel/todo-api/internal/platform/memory"
	"github.com/mkessel/todo-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction)
	taskStore store.TaskStore
}

// newApplication creates a new application instance with all dependencies
// initialized. The task store is constructed here, once per process, and
// handed to the routing layer by reference; nothing else owns task state.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	app := &application{
		config: cfg,
		logger: logger,
	}

	app.taskStore = memory.NewTaskStore(logger)

	logger.Info("Application initialized successfully")
	return app
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	// Set up router using the application dependencies
	router := app.setupRouter()

	// Start the HTTP server
	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
// The in-memory store needs no teardown; its contents are discarded with
// the process.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
