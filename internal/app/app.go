package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tick/internal/config"
	"github.com/thenoetrevino/tick/internal/database"
	taskservice "github.com/thenoetrevino/tick/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	Config *config.Config
	Logger *slog.Logger

	// Service layer (business logic)
	TaskService taskservice.Service
	// Controller is the boolean view of the same store
	Controller *taskservice.Controller
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.config == nil {
		cfg.config = config.Default()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return &App{
		repo:        repo,
		Config:      cfg.config,
		Logger:      cfg.logger,
		TaskService: taskservice.NewService(repo),
		Controller:  taskservice.NewController(repo),
	}
}

// Open creates the storage handle described by cfg and builds an App on it
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	h, err := database.NewHandle(ctx, cfg.Database.Path, cfg.StorageMode())
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.Database.Path, err)
	}

	slog.Debug("database opened", "path", cfg.Database.Path, "mode", h.Mode().String())

	opts = append([]Option{WithConfig(cfg)}, opts...)
	return New(database.NewRepository(h), opts...), nil
}

// Close releases the storage handle
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
