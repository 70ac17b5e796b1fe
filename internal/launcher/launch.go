package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tick/internal/app"
	"github.com/thenoetrevino/tick/internal/config"
	"github.com/thenoetrevino/tick/internal/tui"
)

// Launch opens the task database described by cfg and runs the TUI until
// the user quits or the process is interrupted
func Launch(ctx context.Context, cfg *config.Config) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg == nil {
		loaded, err := config.Load("")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	}

	application, err := app.Open(ctx, cfg, app.WithLogger(slog.Default().With("component", "tui")))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	logger := application.Logger

	// database cleanup
	defer func() {
		if err := application.Close(); err != nil {
			logger.Error("error closing database", "error", err)
		}
	}()

	logger.Info("starting tui", "db", cfg.Database.Path)
	model := tui.New(ctx, application.TaskService, cfg)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received, cleaning up")
		// Wait for the program to restore the terminal
		<-errChan
	}

	return nil
}
