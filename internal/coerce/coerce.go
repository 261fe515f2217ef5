// Package coerce turns CLI-shaped string input into a typed argument list.
//
// Two deliberately separate code paths with different failure behavior: the
// structured params blob is strict JSON, because a malformed request body is
// almost always a user mistake worth halting on, while positional tokens
// degrade to plain strings, because a bare identifier is usually meant
// literally.
package coerce

import (
	"encoding/json"
	"fmt"
)

// ParseError reports a malformed structured-params blob. Positional tokens
// never produce it.
type ParseError struct {
	Raw string
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid params JSON: %v", e.Err)
}

// Unwrap exposes the underlying JSON diagnostic.
func (e *ParseError) Unwrap() error { return e.Err }

// BuildArgs assembles the ordered argument list for a dispatch invocation.
// A non-empty rawParams is parsed strictly as a single JSON value and
// prepended; failure aborts the whole coercion with a *ParseError. Each
// positional token is then tried as JSON and kept verbatim when it is not
// valid JSON. Empty input yields an empty, non-nil list.
//
// A token that happens to be valid JSON ("true", "42", "null") becomes the
// typed value even when the caller meant the literal text. Quote the token
// to force a string.
func BuildArgs(rawParams string, positional []string) ([]any, error) {
	args := make([]any, 0, len(positional)+1)

	if rawParams != "" {
		var params any
		if err := json.Unmarshal([]byte(rawParams), &params); err != nil {
			return nil, &ParseError{Raw: rawParams, Err: err}
		}
		args = append(args, params)
	}

	for _, tok := range positional {
		args = append(args, coerceToken(tok))
	}

	return args, nil
}

// coerceToken never fails; it falls back to the literal string.
func coerceToken(tok string) any {
	raw := []byte(tok)
	if !json.Valid(raw) {
		return tok
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return tok
	}
	return v
}
