// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scaffold

import (
	"path/filepath"
	"sort"
	"strings"
)

const fixedBaseName = "index"

// OutputPath derives the canonical output path for a fetched scaffold:
// translate is applied first (identity if nil), then the base name is
// replaced with "index", keeping directory and extension. Pure function;
// never touches the filesystem.
func OutputPath(rawPath string, translate func(string) string) string {
	if translate != nil {
		rawPath = translate(rawPath)
	}
	dir := filepath.Dir(rawPath)
	ext := filepath.Ext(rawPath)
	return filepath.Join(dir, fixedBaseName+ext)
}

// NewPrefixTranslator returns a path translator that rewrites the longest
// matching prefix from pathMap. Used when the fetch executor reports paths
// from a different filesystem namespace than the editor's (container
// mounts, remote shells). An empty map yields the identity function.
func NewPrefixTranslator(pathMap map[string]string) func(string) string {
	if len(pathMap) == 0 {
		return func(p string) string { return p }
	}

	// Longest prefix first so /mnt/work wins over /mnt.
	prefixes := make([]string, 0, len(pathMap))
	for from := range pathMap {
		prefixes = append(prefixes, from)
	}
	sort.Slice(prefixes, func(i, j int) bool {
		return len(prefixes[i]) > len(prefixes[j])
	})

	return func(p string) string {
		for _, from := range prefixes {
			if strings.HasPrefix(p, from) {
				return pathMap[from] + p[len(from):]
			}
		}
		return p
	}
}
