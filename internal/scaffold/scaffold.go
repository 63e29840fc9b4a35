// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scaffold normalizes fetched scaffold files: it extracts problem
// metadata from the header comment block and appends a metadata declaration
// to the file content. The transformation is purely additive; callers own
// all file I/O.
package scaffold

import (
	"fmt"
	"strings"

	"github.com/pdiddy/leetfetch/pkg/types"
)

// difficulties is the fixed set of difficulty tokens a scaffold header
// may carry, checked as whole words.
var difficulties = []string{"Easy", "Medium", "Hard"}

// MalformedError reports a scaffold whose header is missing one of the
// required patterns. Missing names the absent piece (title, url, difficulty).
type MalformedError struct {
	Missing string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed scaffold: missing %s", e.Missing)
}

// Normalize parses the scaffold's header comment for the bracketed-id title
// line, the problem URL, and the difficulty token, and returns the content
// with an appended metadata block. The original content is preserved
// byte-for-byte as a prefix of the result.
func Normalize(content string) (string, error) {
	meta, err := Extract(content)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		b.WriteByte('\n')
	}
	b.WriteString(renderMeta(meta))
	return b.String(), nil
}

// Extract scans content line by line for the three required header patterns
// and returns the derived metadata. Scanning is first-match per pattern;
// each pattern is independent of the others.
func Extract(content string) (types.ProblemMeta, error) {
	var meta types.ProblemMeta
	var haveTitle, haveURL, haveDifficulty bool

	for _, line := range strings.Split(content, "\n") {
		if !haveTitle {
			if id, title, ok := parseTitleLine(line); ok {
				meta.ID = id
				meta.Title = title
				haveTitle = true
			}
		}
		if !haveURL {
			if url, ok := parseURL(line); ok {
				meta.URL = url
				haveURL = true
			}
		}
		if !haveDifficulty {
			if d, ok := parseDifficulty(line); ok {
				meta.Difficulty = d
				haveDifficulty = true
			}
		}
		if haveTitle && haveURL && haveDifficulty {
			break
		}
	}

	switch {
	case !haveTitle:
		return types.ProblemMeta{}, &MalformedError{Missing: "title"}
	case !haveURL:
		return types.ProblemMeta{}, &MalformedError{Missing: "url"}
	case !haveDifficulty:
		return types.ProblemMeta{}, &MalformedError{Missing: "difficulty"}
	}
	return meta, nil
}

// parseTitleLine matches a line containing a bracketed id followed by a
// title, e.g. "* [1]. Two Sum". The id is the text between the first '['
// and the next ']'; the title is the remainder with any leading run of
// '.', ':' and whitespace removed. Both must be non-empty.
func parseTitleLine(line string) (id, title string, ok bool) {
	open := strings.IndexByte(line, '[')
	if open < 0 {
		return "", "", false
	}
	end := strings.IndexByte(line[open:], ']')
	if end < 0 {
		return "", "", false
	}
	end += open

	id = strings.TrimSpace(line[open+1 : end])
	if id == "" || !isDigits(id) {
		return "", "", false
	}

	title = strings.TrimLeft(line[end+1:], ".: \t")
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "", false
	}
	return id, title, true
}

// parseURL returns the first whitespace-delimited field starting with
// https://, taken verbatim.
func parseURL(line string) (string, bool) {
	for _, f := range strings.Fields(line) {
		if strings.HasPrefix(f, "https://") {
			return f, true
		}
	}
	return "", false
}

// parseDifficulty returns the first difficulty token appearing as a whole
// field on the line. Fields are checked after trimming comment punctuation
// so "Difficulty: Easy" and "* Easy" both match.
func parseDifficulty(line string) (string, bool) {
	for _, f := range strings.Fields(line) {
		f = strings.Trim(f, "*:,.")
		for _, d := range difficulties {
			if f == d {
				return d, true
			}
		}
	}
	return "", false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// renderMeta produces the appended metadata declaration. Values are escaped
// for single-quoted literals so a quote in a title cannot break the block.
func renderMeta(meta types.ProblemMeta) string {
	return fmt.Sprintf(
		"export const problem = {\n"+
			"  id: '%s',\n"+
			"  title: '%s',\n"+
			"  url: '%s',\n"+
			"  difficulty: '%s',\n"+
			"};\n",
		quoteSingle(meta.ID), quoteSingle(meta.Title),
		quoteSingle(meta.URL), quoteSingle(meta.Difficulty),
	)
}

// quoteSingle escapes backslashes and single quotes for embedding in a
// single-quoted string literal.
func quoteSingle(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return s
}
