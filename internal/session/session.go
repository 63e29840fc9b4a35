// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session loads fetch-executor credentials from a directory of
// plain-text files and passes them through as environment variables. Each
// file is one credential: the filename is the key, the trimmed contents the
// value. The tool does no session management itself; the executor owns
// authentication.
//
// Supported key files: leetcode-session, leetcode-csrf.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// envByFile maps credential file names to the environment variables the
// fetch executor reads.
var envByFile = map[string]string{
	"leetcode-session": "LEETCODE_SESSION",
	"leetcode-csrf":    "LEETCODE_CSRF",
}

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory or missing files are not errors; Load
// returns an empty map. Unreadable files produce a warning on stderr but
// do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading session directory %s: %w", dir, err)
	}

	creds := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read credential %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			creds[name] = value
		}
	}

	return creds, nil
}

// Environ returns base extended with the executor environment variables for
// any recognized credentials. Unrecognized files are ignored.
func Environ(base []string, creds map[string]string) []string {
	env := make([]string, len(base), len(base)+len(creds))
	copy(env, base)
	for file, envVar := range envByFile {
		if v, ok := creds[file]; ok {
			env = append(env, envVar+"="+v)
		}
	}
	return env
}
