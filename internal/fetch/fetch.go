// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch runs the scaffold pipeline for one problem: invoke the
// fetch executor, normalize the generated scaffold, move it to the
// workspace's fixed layout, record a metadata sidecar, and trigger the
// downstream build. Files already written are not cleaned up when a later
// step fails.
package fetch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/leetfetch/internal/build"
	"github.com/pdiddy/leetfetch/internal/leetcli"
	"github.com/pdiddy/leetfetch/internal/scaffold"
)

const (
	problemsDir = "problems"
	metaFile    = "meta.yaml"
)

// Deps holds the pipeline's collaborators, injected by the command layer.
type Deps struct {
	// Client invokes the fetch executor.
	Client leetcli.Client

	// Translate maps executor-reported paths into local paths. Nil means
	// identity.
	Translate func(string) string

	// Root is the workspace root directory.
	Root string

	// Builder runs the downstream build command. Nil disables the step.
	Builder *build.Runner

	// Out receives progress lines.
	Out io.Writer
}

// Run fetches the scaffold for the problem in the given language and
// returns the path of the normalized file.
func Run(ctx context.Context, deps Deps, id, language string) (string, error) {
	outDir := filepath.Join(deps.Root, problemsDir, id)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating problem directory: %w", err)
	}

	output, err := deps.Client.Fetch(ctx, id, language, outDir)
	if err != nil {
		return "", err
	}

	rawPath, err := leetcli.SourcePath(output)
	if err != nil {
		return "", err
	}

	srcPath := rawPath
	if deps.Translate != nil {
		srcPath = deps.Translate(rawPath)
	}
	outPath := scaffold.OutputPath(rawPath, deps.Translate)

	content, err := os.ReadFile(srcPath)
	if err != nil {
		return "", fmt.Errorf("reading scaffold %s: %w", srcPath, err)
	}

	meta, err := scaffold.Extract(string(content))
	if err != nil {
		return "", err
	}
	normalized, err := scaffold.Normalize(string(content))
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outPath, []byte(normalized), 0o644); err != nil {
		return "", fmt.Errorf("writing scaffold %s: %w", outPath, err)
	}
	if outPath != srcPath {
		if err := os.Remove(srcPath); err != nil {
			fmt.Fprintf(deps.Out, "warning: could not remove %s: %v\n", srcPath, err)
		}
	}

	metaPath := filepath.Join(filepath.Dir(outPath), metaFile)
	data, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshaling metadata: %w", err)
	}
	if err := os.WriteFile(metaPath, data, 0o644); err != nil {
		return "", fmt.Errorf("writing metadata %s: %w", metaPath, err)
	}

	fmt.Fprintf(deps.Out, "fetched [%s] %s (%s) -> %s\n", meta.ID, meta.Title, meta.Difficulty, outPath)

	if deps.Builder != nil && deps.Builder.Enabled() {
		if err := deps.Builder.Run(ctx, id, deps.Out); err != nil {
			return "", err
		}
	}

	return outPath, nil
}
