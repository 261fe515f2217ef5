package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/apicall-dev/apicall/internal/coerce"
	"github.com/apicall-dev/apicall/internal/ctxlog"
)

// Run executes one verb against the dispatcher.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	switch cfg.Mode {
	case ModeList:
		return a.runList()
	case ModeDescribe:
		return a.runDescribe(cfg.Module, cfg.Method)
	default:
		return a.runCall(ctx, cfg)
	}
}

func (a *App) runList() error {
	catalog := a.dispatcher.ListAllSorted()
	for _, mod := range catalog.Modules {
		fmt.Fprintln(a.outW, mod)
		for _, method := range catalog.MethodsByModule[mod] {
			fmt.Fprintf(a.outW, "  %s\n", method)
		}
	}
	return nil
}

func (a *App) runDescribe(module, method string) error {
	desc := a.dispatcher.DescribeMethod(module, method)
	if desc == "" {
		return fmt.Errorf("unknown method %s.%s", module, method)
	}
	fmt.Fprintln(a.outW, desc)
	fmt.Fprintf(a.outW, "Parameters: %s\n", a.dispatcher.InferSignature(module, method))
	return nil
}

func (a *App) runCall(ctx context.Context, cfg *Config) error {
	args, err := coerce.BuildArgs(cfg.RawParams, cfg.Positional)
	if err != nil {
		return err
	}

	a.logger.Info("🚀 Dispatching remote call...", "module", cfg.Module, "method", cfg.Method, "arg_count", len(args))
	result, err := a.dispatcher.Invoke(ctx, cfg.Module, cfg.Method, args)
	if err != nil {
		return err
	}
	a.logger.Info("🏁 Remote call finished.")

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}
	fmt.Fprintf(a.outW, "%s\n", out)
	return nil
}
