// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Languages is the fixed set of languages the fetch executor supports.
// A persisted default is honored only when it is a member of this set.
var Languages = []string{
	"bash", "c", "cpp", "csharp", "golang", "java", "javascript",
	"kotlin", "mysql", "php", "python", "python3", "ruby", "rust",
	"scala", "swift", "typescript",
}

// IsSupportedLanguage reports whether lang is a member of Languages.
func IsSupportedLanguage(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// FetchConfig holds settings for invoking the external fetch executor.
type FetchConfig struct {
	// ExecutorBin is the fetch executor binary name or path (default "leetcode").
	ExecutorBin string `json:"executor_bin" yaml:"executor_bin"`

	// Timeout bounds a single executor invocation (default 60s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// WorkspaceConfig holds settings for the problem workspace on disk.
type WorkspaceConfig struct {
	// Root is the workspace directory under which problems/<id>/ directories
	// are created.
	Root string `json:"root" yaml:"root"`

	// PathMap translates executor-reported paths into editor-visible paths
	// when the executor runs in a different filesystem namespace (e.g. a
	// container mount). Keys are executor-side prefixes, values are host-side
	// prefixes. Empty means identity.
	PathMap map[string]string `json:"path_map" yaml:"path_map"`
}

// CatalogConfig holds settings for the problem listing cache.
type CatalogConfig struct {
	// CacheDir is the directory holding the SQLite cache database.
	CacheDir string `json:"cache_dir" yaml:"cache_dir"`

	// TTL is how long a cached listing is considered fresh (default 24h).
	TTL time.Duration `json:"ttl" yaml:"ttl"`
}

// BuildConfig holds the downstream build command invoked after a scaffold
// is written. The command is opaque to this tool; the problem id is appended
// as the final argument.
type BuildConfig struct {
	// Command is the build command line, split on whitespace. Empty disables
	// the build step.
	Command string `json:"command" yaml:"command"`
}

// EditorConfig holds the command used to open the normalized scaffold.
type EditorConfig struct {
	// Command is the editor command line (default: $EDITOR). Empty disables
	// the editor step; the path is still printed.
	Command string `json:"command" yaml:"command"`
}

// ToolConfig groups all configuration for the tool.
type ToolConfig struct {
	Fetch     FetchConfig     `json:"fetch" yaml:"fetch"`
	Workspace WorkspaceConfig `json:"workspace" yaml:"workspace"`
	Catalog   CatalogConfig   `json:"catalog" yaml:"catalog"`
	Build     BuildConfig     `json:"build" yaml:"build"`
	Editor    EditorConfig    `json:"editor" yaml:"editor"`
}
