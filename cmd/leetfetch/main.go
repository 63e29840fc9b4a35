// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the leetfetch CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/leetfetch/internal/leetcli"
	"github.com/pdiddy/leetfetch/internal/session"
	"github.com/pdiddy/leetfetch/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedCreds holds executor credentials loaded from .secrets/ at startup.
var loadedCreds map[string]string

// rootCmd is the base command for the leetfetch CLI.
var rootCmd = &cobra.Command{
	Use:   "leetfetch",
	Short: "Fetch and normalize coding-problem scaffolds",
	Long: `leetfetch drives the external leetcode CLI to generate scaffold files for
coding problems, normalizes each scaffold (metadata block appended, file
renamed to the fixed index.<ext> layout), records a YAML sidecar, opens the
file in your editor, and triggers a configured build command.

Problem listings are cached locally; use pick to choose interactively or
fetch to grab a problem by id.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		creds, err := session.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedCreds = creds
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./leetfetch.yaml or ~/.config/leetfetch/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("leetfetch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "leetfetch"))
		}
	}

	viper.SetEnvPrefix("LEETFETCH")
	viper.AutomaticEnv()

	viper.SetDefault("fetch.executor", "leetcode")
	viper.SetDefault("fetch.timeout", "60s")
	viper.SetDefault("workspace.root", ".")
	viper.SetDefault("catalog.ttl", "24h")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// toolConfig assembles the typed configuration from viper.
func toolConfig() types.ToolConfig {
	cacheDir := viper.GetString("catalog.cache_dir")
	if cacheDir == "" {
		if base, err := os.UserCacheDir(); err == nil {
			cacheDir = filepath.Join(base, "leetfetch")
		} else {
			cacheDir = ".leetfetch-cache"
		}
	}

	timeout := viper.GetDuration("fetch.timeout")
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	ttl := viper.GetDuration("catalog.ttl")
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return types.ToolConfig{
		Fetch: types.FetchConfig{
			ExecutorBin: viper.GetString("fetch.executor"),
			Timeout:     timeout,
		},
		Workspace: types.WorkspaceConfig{
			Root:    viper.GetString("workspace.root"),
			PathMap: viper.GetStringMapString("workspace.path_map"),
		},
		Catalog: types.CatalogConfig{
			CacheDir: cacheDir,
			TTL:      ttl,
		},
		Build: types.BuildConfig{
			Command: viper.GetString("build.command"),
		},
		Editor: types.EditorConfig{
			Command: viper.GetString("editor.command"),
		},
	}
}

// newExecutorClient builds the fetch-executor client with session
// credentials in its environment.
func newExecutorClient(cfg types.FetchConfig) (leetcli.Client, error) {
	env := session.Environ(os.Environ(), loadedCreds)
	return leetcli.NewClient(cfg, env)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
