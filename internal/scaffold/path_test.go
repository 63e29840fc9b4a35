// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scaffold

import "testing"

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"renames base", "/a/b/c/two-sum.ts", "/a/b/c/index.ts"},
		{"already index", "/a/b/c/index.ts", "/a/b/c/index.ts"},
		{"other extension", "/w/p/1/two-sum.py", "/w/p/1/index.py"},
		{"no extension", "/w/p/1/two-sum", "/w/p/1/index"},
		{"relative path", "p/1/two-sum.go", "p/1/index.go"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OutputPath(tt.in, nil)
			if got != tt.want {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOutputPathIdempotent(t *testing.T) {
	identity := func(p string) string { return p }
	once := OutputPath("/a/b/two-sum.ts", identity)
	twice := OutputPath(once, identity)
	if once != twice {
		t.Errorf("not idempotent: %q then %q", once, twice)
	}
}

func TestOutputPathAppliesTranslateFirst(t *testing.T) {
	translate := NewPrefixTranslator(map[string]string{"/mnt/work": "/home/u/code"})
	got := OutputPath("/mnt/work/p/1/two-sum.ts", translate)
	want := "/home/u/code/p/1/index.ts"
	if got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
}

func TestNewPrefixTranslator(t *testing.T) {
	tr := NewPrefixTranslator(map[string]string{
		"/mnt":      "/host/mnt",
		"/mnt/work": "/home/u/code",
	})

	tests := []struct {
		in   string
		want string
	}{
		{"/mnt/work/a.ts", "/home/u/code/a.ts"}, // longest prefix wins
		{"/mnt/other/a.ts", "/host/mnt/other/a.ts"},
		{"/elsewhere/a.ts", "/elsewhere/a.ts"},
	}
	for _, tt := range tests {
		if got := tr(tt.in); got != tt.want {
			t.Errorf("translate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewPrefixTranslatorEmptyIsIdentity(t *testing.T) {
	tr := NewPrefixTranslator(nil)
	if got := tr("/a/b.ts"); got != "/a/b.ts" {
		t.Errorf("identity broken: %q", got)
	}
}
