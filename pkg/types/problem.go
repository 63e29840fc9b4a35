// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ProblemState describes the user's submission status for a problem as
// reported by the listing executor.
type ProblemState string

const (
	StateAccepted    ProblemState = "accepted"
	StateNotAccepted ProblemState = "not_accepted"
	StateUnknown     ProblemState = "unknown"
)

// ProblemSummary is one row of the problem listing. Immutable once parsed;
// the executor owns the authoritative data.
type ProblemSummary struct {
	// ID is the problem's numeric identifier, kept as a string because the
	// executor prints it as text and it is only ever used as a key.
	ID string `json:"id" yaml:"id"`

	// Name is the problem title as listed (e.g. "Two Sum").
	Name string `json:"name" yaml:"name"`

	// State is the submission status: accepted, not_accepted, or unknown.
	State ProblemState `json:"state" yaml:"state"`

	// Locked reports whether the problem is behind a paywall.
	Locked bool `json:"locked" yaml:"locked"`

	// PassRate is the acceptance rate as printed by the executor (e.g. "45.3%").
	PassRate string `json:"pass_rate" yaml:"pass_rate"`

	// Difficulty is one of Easy, Medium, Hard.
	Difficulty string `json:"difficulty" yaml:"difficulty"`
}

// ProblemMeta is the normalized metadata derived from a scaffold file's
// header comment. It is appended to the scaffold as a metadata block and
// written next to it as a YAML sidecar.
type ProblemMeta struct {
	ID         string `json:"id" yaml:"id"`
	Title      string `json:"title" yaml:"title"`
	URL        string `json:"url" yaml:"url"`
	Difficulty string `json:"difficulty" yaml:"difficulty"`
}

// SelectionItem is the presentation projection of a ProblemSummary for the
// interactive picker. Stateless; rebuilt on every picker invocation.
type SelectionItem struct {
	// Label is the problem name decorated with a status glyph.
	Label string

	// Description is a short secondary line (difficulty).
	Description string

	// Detail carries the pass rate.
	Detail string

	// Value is the problem id handed back when the item is chosen.
	Value string
}
