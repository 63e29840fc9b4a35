package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/pdiddy/leetfetch/pkg/types"
)

// openEditor opens path with the configured editor command, falling back
// to $EDITOR. With neither set, the path is printed and the user opens it
// themselves.
func openEditor(cfg types.EditorConfig, path string) error {
	command := cfg.Command
	if command == "" {
		command = os.Getenv("EDITOR")
	}
	if command == "" {
		fmt.Println(path)
		return nil
	}

	parts := strings.Fields(command)
	args := append(parts[1:], path)

	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("opening editor: %w", err)
	}
	return nil
}
