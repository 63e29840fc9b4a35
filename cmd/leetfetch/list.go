package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pdiddy/leetfetch/internal/catalog"
	"github.com/pdiddy/leetfetch/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List problems from the cached catalog",
	RunE:  runList,
}

func init() {
	listCmd.Flags().String("difficulty", "", "filter by Easy, Medium, or Hard")
	listCmd.Flags().Bool("refresh", false, "refresh the listing even when the cache is fresh")

	rootCmd.AddCommand(listCmd)
}

var (
	glyphOK     = color.New(color.FgGreen).Sprint("✔")
	glyphFailed = color.New(color.FgRed).Sprint("✘")
	glyphLock   = color.New(color.FgYellow).Sprint("🔒")
)

func runList(cmd *cobra.Command, args []string) error {
	difficulty, _ := cmd.Flags().GetString("difficulty")
	refresh, _ := cmd.Flags().GetBool("refresh")

	cfg := toolConfig()

	store, err := catalog.NewStore(cfg.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	client, err := newExecutorClient(cfg.Fetch)
	if err != nil {
		return err
	}
	refreshed, err := store.Ensure(cmd.Context(), client, cfg.Catalog.TTL, refresh)
	if err != nil {
		return err
	}
	if refreshed {
		fmt.Fprintln(os.Stderr, "catalog refreshed")
	}

	problems, err := store.Problems(cmd.Context(), catalog.Filter{Difficulty: difficulty})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, p := range problems {
		fmt.Fprintf(w, "%s\t[%s]\t%s\t%s\t%s\n",
			stateGlyph(p), p.ID, p.Name, p.Difficulty, p.PassRate)
	}
	return w.Flush()
}

func stateGlyph(p types.ProblemSummary) string {
	switch p.State {
	case types.StateAccepted:
		return glyphOK
	case types.StateNotAccepted:
		return glyphFailed
	default:
		if p.Locked {
			return glyphLock
		}
		return " "
	}
}
