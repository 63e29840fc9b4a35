// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingDirIsEmpty(t *testing.T) {
	creds, err := Load(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, creds)
}

func TestLoadReadsAndTrims(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "leetcode-session"), []byte("  tok123\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "leetcode-csrf"), []byte("csrf456"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("*"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty"), []byte("  \n"), 0o600))

	creds, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"leetcode-session": "tok123",
		"leetcode-csrf":    "csrf456",
	}, creds)
}

func TestEnviron(t *testing.T) {
	base := []string{"PATH=/usr/bin"}
	creds := map[string]string{
		"leetcode-session": "tok123",
		"unrelated-file":   "junk",
	}

	env := Environ(base, creds)

	assert.Contains(t, env, "PATH=/usr/bin")
	assert.Contains(t, env, "LEETCODE_SESSION=tok123")
	for _, e := range env {
		assert.NotContains(t, e, "junk")
	}
}

func TestEnvironDoesNotMutateBase(t *testing.T) {
	base := make([]string, 1, 4)
	base[0] = "PATH=/usr/bin"
	_ = Environ(base, map[string]string{"leetcode-session": "x"})
	assert.Equal(t, []string{"PATH=/usr/bin"}, base)
}
