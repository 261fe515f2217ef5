// Package cli parses command-line arguments into an app.Config.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/apicall-dev/apicall/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("apicall", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
apicall - discover and invoke operations on a remote API by name.

Usage:
  apicall [options] MODULE METHOD [ARGS...]
  apicall --list
  apicall --describe MODULE METHOD

Arguments:
  MODULE   API module (namespace) name, e.g. "accounts".
  METHOD   Operation name within the module, e.g. "getNativeBalance".
  ARGS     Positional call arguments. Each token is parsed as JSON when
           possible and passed as a literal string otherwise.

Options:
`)
		flagSet.PrintDefaults()
	}

	paramsFlag := flagSet.String("params", "", "JSON object passed as the first call argument.")
	pFlag := flagSet.String("p", "", "JSON object passed as the first call argument (shorthand).")
	listFlag := flagSet.Bool("list", false, "List every visible module and method, sorted.")
	describeFlag := flagSet.Bool("describe", false, "Describe a method instead of calling it.")
	modulesFlag := flagSet.String("modules", "", "Comma-separated allow-list of visible modules (case-insensitive).")
	configFlag := flagSet.String("config", "apicall.hcl", "Path to the HCL config file.")
	baseURLFlag := flagSet.String("base-url", "", "Remote API endpoint. Overrides the config file.")
	streamURLFlag := flagSet.String("stream-url", "", "Streaming endpoint for the streams module. Overrides the config file.")
	apiKeyFlag := flagSet.String("api-key", "", "API key sent with every call. Overrides the config file.")
	timeoutFlag := flagSet.String("timeout", "", "Per-call timeout, e.g. '30s'. Overrides the config file.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	mode := app.ModeCall
	if *describeFlag {
		mode = app.ModeDescribe
	}
	if *listFlag {
		mode = app.ModeList
	}

	cfg := app.Config{
		Mode:       mode,
		ConfigPath: *configFlag,
		BaseURL:    *baseURLFlag,
		StreamURL:  *streamURLFlag,
		APIKey:     *apiKeyFlag,
		Timeout:    *timeoutFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	}

	params := *paramsFlag
	if params == "" {
		params = *pFlag
	}
	cfg.RawParams = params

	if *modulesFlag != "" {
		for _, name := range strings.Split(*modulesFlag, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Modules = append(cfg.Modules, name)
			}
		}
	}

	if mode != app.ModeList {
		rest := flagSet.Args()
		if len(rest) == 0 {
			slog.Debug("No module/method provided, printing usage and exiting.")
			flagSet.Usage()
			return nil, true, nil
		}
		if len(rest) < 2 {
			return nil, false, &ExitError{Code: 2, Message: "a module and a method are required"}
		}
		cfg.Module = rest[0]
		cfg.Method = rest[1]
		cfg.Positional = rest[2:]
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
