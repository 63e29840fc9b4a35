package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/leetfetch/internal/catalog"
	"github.com/pdiddy/leetfetch/internal/picker"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a problem interactively and fetch its scaffold",
	Long: `Pick shows the cached problem listing in an interactive chooser (refreshing
it through the executor when stale), then runs the same pipeline as fetch
for the chosen problem.`,
	RunE: runPick,
}

func init() {
	pickCmd.Flags().String("lang", "", "scaffold language (overrides the persisted default)")
	pickCmd.Flags().String("difficulty", "", "restrict the chooser to Easy, Medium, or Hard")
	pickCmd.Flags().Bool("refresh", false, "refresh the listing even when the cache is fresh")

	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	flagLang, _ := cmd.Flags().GetString("lang")
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
	if _, err := store.Ensure(cmd.Context(), client, cfg.Catalog.TTL, refresh); err != nil {
		return err
	}

	problems, err := store.Problems(cmd.Context(), catalog.Filter{Difficulty: difficulty})
	if err != nil {
		return err
	}
	if len(problems) == 0 {
		return fmt.Errorf("no problems in the catalog (try --refresh)")
	}

	id, err := picker.ChooseProblem(picker.ToPicks(problems))
	if errors.Is(err, picker.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}

	lang, ok, err := resolveLanguage(flagLang)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	return fetchProblem(cmd.Context(), id, lang)
}
