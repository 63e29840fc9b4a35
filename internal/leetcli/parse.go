// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package leetcli

import (
	"strings"

	"github.com/pdiddy/leetfetch/pkg/types"
)

// Listing line grammar:
//
//	<marks> [<id>] <name> <difficulty> (<rate>%)
//
// where marks is a possibly empty run of status glyphs: ✔ accepted,
// ✘ not accepted, 🔒 locked. The executor interleaves banner and progress
// lines with the listing; anything not matching the grammar is skipped.
const (
	markAccepted    = '✔'
	markNotAccepted = '✘'
	markLocked      = '🔒'
)

// ParseList parses executor listing output into problem summaries. The
// second return value counts lines that carried a bracketed id but did not
// satisfy the rest of the grammar.
func ParseList(output string) ([]types.ProblemSummary, int) {
	var problems []types.ProblemSummary
	skipped := 0

	for _, line := range strings.Split(output, "\n") {
		p, ok, attempted := parseListLine(line)
		if ok {
			problems = append(problems, p)
		} else if attempted {
			skipped++
		}
	}
	return problems, skipped
}

// parseListLine parses one listing line. attempted reports whether the line
// looked like a listing row (had a bracketed id) even if malformed.
func parseListLine(line string) (p types.ProblemSummary, ok, attempted bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return p, false, false
	}

	open := strings.IndexByte(line, '[')
	if open < 0 {
		return p, false, false
	}
	end := strings.IndexByte(line[open:], ']')
	if end < 0 {
		return p, false, false
	}
	end += open

	id := strings.TrimSpace(line[open+1 : end])
	if id == "" || !isDigits(id) {
		return p, false, false
	}
	attempted = true

	p.ID = id
	p.State = types.StateUnknown
	for _, r := range line[:open] {
		switch r {
		case markAccepted:
			p.State = types.StateAccepted
		case markNotAccepted:
			p.State = types.StateNotAccepted
		case markLocked:
			p.Locked = true
		}
	}

	// After the id: <name> <difficulty> (<rate>%). Take the rate and
	// difficulty off the right, the rest is the name.
	fields := strings.Fields(line[end+1:])
	if len(fields) < 3 {
		return types.ProblemSummary{}, false, true
	}

	rate := fields[len(fields)-1]
	if !strings.HasPrefix(rate, "(") || !strings.HasSuffix(rate, "%)") {
		return types.ProblemSummary{}, false, true
	}
	p.PassRate = strings.TrimSuffix(strings.TrimPrefix(rate, "("), ")")

	difficulty := fields[len(fields)-2]
	switch difficulty {
	case "Easy", "Medium", "Hard":
		p.Difficulty = difficulty
	default:
		return types.ProblemSummary{}, false, true
	}

	p.Name = strings.Join(fields[:len(fields)-2], " ")
	if p.Name == "" {
		return types.ProblemSummary{}, false, true
	}
	return p, true, true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
