// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scaffold

import (
	"errors"
	"strings"
	"testing"
)

const sampleScaffold = "/**\n * [1]. Two Sum\n * https://leetcode.com/problems/two-sum\n * Difficulty: Easy\n */\n"

func TestNormalizeAppendsMetadataBlock(t *testing.T) {
	out, err := Normalize(sampleScaffold)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if !strings.HasPrefix(out, sampleScaffold) {
		t.Error("original content should be preserved as a prefix")
	}
	for _, want := range []string{
		"export const problem = {",
		"id: '1',",
		"title: 'Two Sum',",
		"url: 'https://leetcode.com/problems/two-sum',",
		"difficulty: 'Easy',",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestNormalizeAddsNewlineBeforeBlock(t *testing.T) {
	// Content without a trailing newline still gets the block on its own line.
	content := strings.TrimSuffix(sampleScaffold, "\n")
	out, err := Normalize(content)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !strings.Contains(out, "*/\nexport const problem") {
		t.Error("metadata block should start on a fresh line")
	}
}

func TestExtractMissingPatterns(t *testing.T) {
	tests := []struct {
		name    string
		content string
		missing string
	}{
		{
			"no title",
			"/**\n * https://leetcode.com/problems/two-sum\n * Easy\n */\n",
			"title",
		},
		{
			"no url",
			"/**\n * [1] Two Sum\n * Easy\n */\n",
			"url",
		},
		{
			"no difficulty",
			"/**\n * [1] Two Sum\n * https://leetcode.com/problems/two-sum\n */\n",
			"difficulty",
		},
		{"empty", "", "title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.content)
			var merr *MalformedError
			if !errors.As(err, &merr) {
				t.Fatalf("err = %v, want *MalformedError", err)
			}
			if merr.Missing != tt.missing {
				t.Errorf("Missing = %q, want %q", merr.Missing, tt.missing)
			}
		})
	}
}

func TestExtractTitleTrimming(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		title string
	}{
		{"plain", " * [1] Two Sum", "Two Sum"},
		{"dot after bracket", " * [1]. Two Sum", "Two Sum"},
		{"colon after bracket", " * [1]: Two Sum", "Two Sum"},
		{"dot and spaces", " * [1] .  Two Sum", "Two Sum"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := "/**\n" + tt.line + "\n * https://x.test/a\n * Easy\n */\n"
			meta, err := Extract(content)
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			if meta.ID != "1" {
				t.Errorf("ID = %q, want %q", meta.ID, "1")
			}
			if meta.Title != tt.title {
				t.Errorf("Title = %q, want %q", meta.Title, tt.title)
			}
		})
	}
}

func TestExtractIgnoresNonNumericBrackets(t *testing.T) {
	// A bracketed tag that is not an id must not shadow the real title line.
	content := "/**\n * [draft] notes\n * [42] Answer\n * https://x.test/a\n * Medium\n */\n"
	meta, err := Extract(content)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if meta.ID != "42" || meta.Title != "Answer" {
		t.Errorf("got id=%q title=%q, want 42/Answer", meta.ID, meta.Title)
	}
}

func TestExtractFirstMatchWins(t *testing.T) {
	content := "/**\n * [1] Two Sum\n * [2] Other\n" +
		" * https://leetcode.com/problems/two-sum\n * https://other.test\n" +
		" * Easy\n * Hard\n */\n"
	meta, err := Extract(content)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if meta.ID != "1" {
		t.Errorf("ID = %q, want first match", meta.ID)
	}
	if meta.URL != "https://leetcode.com/problems/two-sum" {
		t.Errorf("URL = %q, want first match", meta.URL)
	}
	if meta.Difficulty != "Easy" {
		t.Errorf("Difficulty = %q, want first match", meta.Difficulty)
	}
}

func TestNormalizeEscapesQuotes(t *testing.T) {
	content := "/**\n * [5] Rob's Ladder\n * https://x.test/a\n * Hard\n */\n"
	out, err := Normalize(content)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !strings.Contains(out, `title: 'Rob\'s Ladder',`) {
		t.Errorf("quote in title should be escaped, got:\n%s", out)
	}
}

func TestParseDifficultyFramedToken(t *testing.T) {
	tests := []struct {
		line string
		want string
		ok   bool
	}{
		{" * Difficulty: Medium", "Medium", true},
		{" * Easy", "Easy", true},
		{" * Hard.", "Hard", true},
		{" * Easily confused", "", false},
		{" * medium", "", false},
	}
	for _, tt := range tests {
		got, ok := parseDifficulty(tt.line)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseDifficulty(%q) = %q,%v, want %q,%v", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}
