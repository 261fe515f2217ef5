// Package config loads the optional HCL configuration file. The file may
// reference process environment variables through the env object, e.g.
//
//	api_key  = env.APICALL_API_KEY
//	base_url = "https://api.example.com/v1/call"
//	modules  = ["accounts", "token"]
package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/apicall-dev/apicall/internal/ctxlog"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// File is the on-disk configuration shape. Every field is optional; CLI
// flags override whatever is set here.
type File struct {
	APIKey    string   `hcl:"api_key,optional"`
	BaseURL   string   `hcl:"base_url,optional"`
	StreamURL string   `hcl:"stream_url,optional"`
	Timeout   string   `hcl:"timeout,optional"`
	Modules   []string `hcl:"modules,optional"`
}

// Load parses the HCL config file at path. A missing file (or empty path)
// yields a zero File, not an error.
func Load(ctx context.Context, path string) (*File, error) {
	logger := ctxlog.FromContext(ctx)

	if path == "" {
		return &File{}, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Debug("No config file found, using defaults.", "path", path)
		return &File{}, nil
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var file File
	if diags := gohcl.DecodeBody(hclFile.Body, evalContext(), &file); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	logger.Debug("Config file loaded.", "path", path)
	return &file, nil
}

// evalContext exposes the process environment as the env object.
func evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			vars[k] = cty.StringVal(v)
		}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": cty.ObjectVal(vars)},
	}
}
