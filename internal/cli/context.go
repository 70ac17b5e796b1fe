package cli

import (
	"context"

	"github.com/thenoetrevino/tick/internal/app"
	"github.com/thenoetrevino/tick/internal/config"
)

type contextKey string

const (
	appKey    contextKey = "app"
	configKey contextKey = "config"
)

// WithApp stores an already opened App in ctx. Commands run with such a
// context use it instead of opening the database themselves.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithConfig stores the loaded configuration in ctx
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the configuration stored by WithConfig, or nil
func ConfigFromContext(ctx context.Context) *config.Config {
	if ctx == nil {
		return nil
	}
	cfg, _ := ctx.Value(configKey).(*config.Config)
	return cfg
}

// GetCLIFromContext returns a CLI for the command being run. An App stored
// with WithApp is reused; otherwise the database is opened from the config
// in ctx and closed again by CLI.Close.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx, ConfigFromContext(ctx))
}
