package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/leetfetch/pkg/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change persisted settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the persisted settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		keys := settableKeys()
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s = %v\n", k, viper.Get(k))
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a persisted setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func settableKeys() []string {
	return []string{
		"language.default",
		"language.hint_dismissed",
		"workspace.root",
		"fetch.executor",
		"build.command",
		"editor.command",
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	var known bool
	for _, k := range settableKeys() {
		if k == key {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown setting %q (known: %v)", key, settableKeys())
	}

	if key == "language.default" && !types.IsSupportedLanguage(value) {
		return fmt.Errorf("unsupported language %q (supported: %v)", value, types.Languages)
	}

	viper.Set(key, value)
	if err := persistConfig(); err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", key, value)
	return nil
}

// persistConfig writes the current settings back to the config file,
// creating ~/.config/leetfetch/config.yaml when none is in use yet.
// Last write wins; preference writes are human-gated and effectively
// serial, so there is no contention control.
func persistConfig() error {
	if viper.ConfigFileUsed() != "" {
		return viper.WriteConfig()
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("locating config directory: %w", err)
	}
	dir := filepath.Join(home, ".config", "leetfetch")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return viper.WriteConfigAs(filepath.Join(dir, "config.yaml"))
}
