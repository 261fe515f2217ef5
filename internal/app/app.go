// Package app wires the application together: logger, config file, client
// graph, and dispatcher, then runs exactly one verb (list, describe, call)
// per process.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/apicall-dev/apicall/internal/client"
	"github.com/apicall-dev/apicall/internal/config"
	"github.com/apicall-dev/apicall/internal/ctxlog"
	"github.com/apicall-dev/apicall/internal/dispatch"
)

// defaultTimeout bounds a call when neither flag nor config file sets one.
const defaultTimeout = 30 * time.Second

// App encapsulates the dispatcher and the run lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	dispatcher *dispatch.Dispatcher
}

// NewApp builds a fully wired App: logger first, then the config file, then
// the client graph and the dispatcher over it. Flag values in cfg take
// precedence over file values.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	file, err := config.Load(ctx, cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	merged := mergeConfig(cfg, file)

	if merged.Mode == ModeCall && merged.BaseURL == "" {
		return nil, fmt.Errorf("base_url is required: set --base-url or the config file")
	}

	timeout := defaultTimeout
	if merged.Timeout != "" {
		timeout, err = time.ParseDuration(merged.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", merged.Timeout, err)
		}
	}

	graph := client.New(client.Config{
		BaseURL:   merged.BaseURL,
		StreamURL: merged.StreamURL,
		APIKey:    merged.APIKey,
		Timeout:   timeout,
	})
	logger.Debug("Client graph assembled.", "base_url", merged.BaseURL, "allow_list", merged.Modules)

	return &App{
		outW:       outW,
		logger:     logger,
		dispatcher: dispatch.New(graph, merged.Modules),
	}, nil
}

// Dispatcher returns the application's dispatcher. This is primarily for
// testing.
func (a *App) Dispatcher() *dispatch.Dispatcher {
	return a.dispatcher
}

// mergeConfig overlays flag values on file values; a set flag always wins.
func mergeConfig(cfg *Config, file *config.File) *Config {
	merged := *cfg
	if merged.BaseURL == "" {
		merged.BaseURL = file.BaseURL
	}
	if merged.StreamURL == "" {
		merged.StreamURL = file.StreamURL
	}
	if merged.APIKey == "" {
		merged.APIKey = file.APIKey
	}
	if merged.Timeout == "" {
		merged.Timeout = file.Timeout
	}
	if len(merged.Modules) == 0 {
		merged.Modules = file.Modules
	}
	return &merged
}
