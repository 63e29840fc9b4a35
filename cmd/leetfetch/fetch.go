package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/leetfetch/internal/build"
	"github.com/pdiddy/leetfetch/internal/fetch"
	"github.com/pdiddy/leetfetch/internal/picker"
	"github.com/pdiddy/leetfetch/internal/scaffold"
	"github.com/pdiddy/leetfetch/pkg/types"
)

// fetchFailedMsg is the single user-facing line for any pipeline failure.
// The underlying error still reaches stderr for diagnosis.
const fetchFailedMsg = "failed to fetch problem information"

var fetchCmd = &cobra.Command{
	Use:   "fetch <id>",
	Short: "Fetch a problem scaffold and normalize it",
	Long: `Fetch invokes the external executor to generate a scaffold for the problem,
appends a normalized metadata block, renames the file to index.<ext>, writes
a meta.yaml sidecar, opens the file in your editor, and runs the configured
build command.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("lang", "", "scaffold language (overrides the persisted default)")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	flagLang, _ := cmd.Flags().GetString("lang")

	lang, ok, err := resolveLanguage(flagLang)
	if err != nil {
		return err
	}
	if !ok {
		// User dismissed the language prompt.
		return nil
	}

	return fetchProblem(cmd.Context(), args[0], lang)
}

// resolveLanguage picks the scaffold language: an explicit flag wins, then
// a valid persisted default, then an interactive prompt. ok is false when
// the user cancels the prompt.
func resolveLanguage(flagLang string) (lang string, ok bool, err error) {
	if flagLang != "" {
		if !types.IsSupportedLanguage(flagLang) {
			return "", false, fmt.Errorf("unsupported language %q", flagLang)
		}
		return flagLang, true, nil
	}

	if def := viper.GetString("language.default"); types.IsSupportedLanguage(def) {
		return def, true, nil
	}

	lang, err = picker.ChooseLanguage(types.Languages)
	if errors.Is(err, picker.ErrCancelled) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	maybeRememberLanguage(lang)
	return lang, true, nil
}

// maybeRememberLanguage runs the one-time "always use this language"
// interaction after an interactive choice, gated on the dismissal flag.
// Preference writes are best effort; failures only warn.
func maybeRememberLanguage(lang string) {
	if viper.GetBool("language.hint_dismissed") {
		return
	}

	remember, dismiss, err := picker.ConfirmDefault(lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return
	}
	if !remember && !dismiss {
		return
	}

	if remember {
		viper.Set("language.default", lang)
	}
	if dismiss {
		viper.Set("language.hint_dismissed", true)
	}
	if err := persistConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not save preference: %v\n", err)
	}
}

// fetchProblem runs the scaffold pipeline and opens the result. All
// pipeline failures collapse into one generic user-facing line; the
// wrapped cause is returned for stderr.
func fetchProblem(ctx context.Context, id, lang string) error {
	cfg := toolConfig()

	client, err := newExecutorClient(cfg.Fetch)
	if err != nil {
		fmt.Fprintln(os.Stderr, fetchFailedMsg)
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Fetch.Timeout)
	defer cancel()

	deps := fetch.Deps{
		Client:    client,
		Translate: scaffold.NewPrefixTranslator(cfg.Workspace.PathMap),
		Root:      cfg.Workspace.Root,
		Builder:   build.NewRunner(cfg.Build.Command, cfg.Workspace.Root, os.Environ()),
		Out:       os.Stdout,
	}

	path, err := fetch.Run(ctx, deps, id, lang)
	if err != nil {
		fmt.Fprintln(os.Stderr, fetchFailedMsg)
		return err
	}

	return openEditor(cfg.Editor, path)
}
