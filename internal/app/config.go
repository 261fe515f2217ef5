package app

import "errors"

// Mode selects which verb a run performs.
type Mode int

const (
	// ModeCall invokes a module method.
	ModeCall Mode = iota
	// ModeList prints the sorted catalog of modules and methods.
	ModeList
	// ModeDescribe prints a method description and parameter hint.
	ModeDescribe
)

// Config holds everything an App run needs.
type Config struct {
	Mode Mode

	Module     string
	Method     string
	RawParams  string
	Positional []string

	ConfigPath string
	BaseURL    string
	StreamURL  string
	APIKey     string
	Timeout    string
	Modules    []string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config assembled by the CLI layer.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Mode != ModeList && (cfg.Module == "" || cfg.Method == "") {
		return nil, errors.New("a module and a method are required")
	}
	return &cfg, nil
}
