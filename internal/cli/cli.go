package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tick/internal/app"
	"github.com/thenoetrevino/tick/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false when the App was injected and belongs to someone else
	owned bool
}

// NewCLI opens the task database described by cfg
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	if cfg == nil {
		loaded, err := config.Load("")
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	}

	application, err := app.Open(ctx, cfg, app.WithLogger(slog.Default().With("component", "cli")))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{App: application, owned: true}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	c.App.Logger.Debug("closing cli")
	return c.App.Close()
}
