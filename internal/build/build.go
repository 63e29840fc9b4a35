// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package build invokes the downstream build command after a scaffold is
// written. The command is opaque configuration; this package only runs it
// keyed by problem id.
package build

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// executor abstracts command execution for testing.
type executor interface {
	Run(ctx context.Context, dir string, env []string, stdout, stderr io.Writer, name string, args ...string) error
}

type osExecutor struct{}

func (o *osExecutor) Run(ctx context.Context, dir string, env []string, stdout, stderr io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = env
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

var defaultExec executor = &osExecutor{}

// Runner runs the configured build command in the workspace root with the
// problem id appended as the final argument and LEETFETCH_PROBLEM set.
type Runner struct {
	command []string
	dir     string
	env     []string
	exec    executor
}

// NewRunner builds a Runner. An empty command disables the build step:
// Run becomes a no-op. env is the base environment for the command.
func NewRunner(command, dir string, env []string) *Runner {
	return newRunner(command, dir, env, defaultExec)
}

func newRunner(command, dir string, env []string, ex executor) *Runner {
	return &Runner{
		command: strings.Fields(command),
		dir:     dir,
		env:     env,
		exec:    ex,
	}
}

// Enabled reports whether a build command is configured.
func (r *Runner) Enabled() bool {
	return len(r.command) > 0
}

// Run invokes the build command for the given problem id, streaming its
// output to w. A disabled runner returns nil immediately.
func (r *Runner) Run(ctx context.Context, id string, w io.Writer) error {
	if !r.Enabled() {
		return nil
	}

	args := append(append([]string{}, r.command[1:]...), id)
	env := append(append([]string{}, r.env...), "LEETFETCH_PROBLEM="+id)

	if err := r.exec.Run(ctx, r.dir, env, w, w, r.command[0], args...); err != nil {
		return fmt.Errorf("build command for problem %s: %w", id, err)
	}
	return nil
}
