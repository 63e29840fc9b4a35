// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package leetcli drives the external fetch executor (the leetcode CLI).
// The executor owns problem fetching and authentication; this package only
// invokes it and interprets its text output at the documented markers.
package leetcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/pdiddy/leetfetch/pkg/types"
)

// sourceMarker is the line prefix the executor uses to report where it
// wrote the generated scaffold. Any output without it is a protocol
// violation.
const sourceMarker = "* Source Code:"

// ErrNoSourcePath reports executor output missing the source-path marker.
var ErrNoSourcePath = errors.New("executor output missing source code path")

// Client invokes the fetch executor.
type Client interface {
	// Fetch asks the executor to generate a scaffold for the problem in the
	// given language under outDir, returning the executor's raw output.
	Fetch(ctx context.Context, id, language, outDir string) (string, error)

	// List returns the executor's raw problem listing output.
	List(ctx context.Context) (string, error)
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunOutput(ctx context.Context, env []string, name string, args ...string) (string, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunOutput(ctx context.Context, env []string, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = env
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running %s: %w: %s", name, err, strings.TrimSpace(errOut.String()))
	}
	return out.String(), nil
}

var defaultExec executor = &osExecutor{}

// CLIClient is the production Client shelling out to the executor binary.
type CLIClient struct {
	bin  string
	env  []string
	exec executor
}

// NewClient builds a CLIClient for the given binary. env is the full
// environment the executor runs with (session variables included); it
// verifies the binary exists on PATH before returning.
func NewClient(cfg types.FetchConfig, env []string) (*CLIClient, error) {
	return newClient(cfg, env, defaultExec)
}

func newClient(cfg types.FetchConfig, env []string, ex executor) (*CLIClient, error) {
	bin := cfg.ExecutorBin
	if bin == "" {
		bin = "leetcode"
	}
	if _, err := ex.LookPath(bin); err != nil {
		return nil, fmt.Errorf("fetch executor %s not found: %w", bin, err)
	}
	return &CLIClient{bin: bin, env: env, exec: ex}, nil
}

func (c *CLIClient) Fetch(ctx context.Context, id, language, outDir string) (string, error) {
	out, err := c.exec.RunOutput(ctx, c.env, c.bin, "show", id, "-g", "-l", language, "-o", outDir)
	if err != nil {
		return "", fmt.Errorf("fetching problem %s: %w", id, err)
	}
	return out, nil
}

func (c *CLIClient) List(ctx context.Context) (string, error) {
	out, err := c.exec.RunOutput(ctx, c.env, c.bin, "list")
	if err != nil {
		return "", fmt.Errorf("listing problems: %w", err)
	}
	return out, nil
}

// SourcePath extracts the generated scaffold path from executor output.
// The executor's contract is a line of the form "* Source Code: <path>".
func SourcePath(output string) (string, error) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, sourceMarker) {
			continue
		}
		path := strings.TrimSpace(strings.TrimPrefix(line, sourceMarker))
		if path == "" {
			continue
		}
		return path, nil
	}
	return "", ErrNoSourcePath
}
