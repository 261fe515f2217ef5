package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_list(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, io.Discard, []string{"--list", "--config", ""})
	require.NoError(t, err)

	// The full client graph, sorted, with methods indented beneath modules.
	assert.Contains(t, out.String(), "accounts\n  getNativeBalance\n")
	assert.Contains(t, out.String(), "streams\n  subscribeBlocks\n  subscribeTransfers\n")
}

func TestRun_describe(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, io.Discard, []string{"--describe", "--config", "", "blocks", "getLatestBlock"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Calls blocks.getLatestBlock on the remote API.")
	assert.Contains(t, out.String(), "Parameters: No parameters required")
}

func TestRun_usage(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, io.Discard, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_missingBaseURL(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, io.Discard, []string{"--config", "", "accounts", "getNativeBalance"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url is required")
}
