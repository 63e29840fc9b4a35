// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package picker projects problem summaries into display items and runs the
// interactive prompts (problem chooser, language chooser, remember-language
// question). Prompt dismissal is a silent no-op for callers, reported as
// ErrCancelled.
package picker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/pdiddy/leetfetch/pkg/types"
)

// Status glyphs for the picker labels.
const (
	glyphAccepted    = "✔"
	glyphNotAccepted = "✘"
	glyphLocked      = "🔒"
)

// ErrCancelled reports that the user dismissed a prompt. Callers treat it
// as a no-op, not a failure.
var ErrCancelled = errors.New("prompt cancelled")

// ToPicks converts problem summaries into display-ready selection items.
// Deterministic 1:1 mapping, input order preserved; glyph rule: accepted
// gets a check, not-accepted a cross, otherwise a lock when the problem is
// locked and nothing when it is not.
func ToPicks(problems []types.ProblemSummary) []types.SelectionItem {
	items := make([]types.SelectionItem, 0, len(problems))
	for _, p := range problems {
		items = append(items, types.SelectionItem{
			Label:       decorate(p),
			Description: p.Difficulty,
			Detail:      p.PassRate,
			Value:       p.ID,
		})
	}
	return items
}

func decorate(p types.ProblemSummary) string {
	name := fmt.Sprintf("[%s] %s", p.ID, p.Name)
	switch p.State {
	case types.StateAccepted:
		return glyphAccepted + " " + name
	case types.StateNotAccepted:
		return glyphNotAccepted + " " + name
	default:
		if p.Locked {
			return glyphLocked + " " + name
		}
		return name
	}
}

// ChooseProblem runs an interactive select over the items and returns the
// chosen problem id. Dismissal returns ErrCancelled.
func ChooseProblem(items []types.SelectionItem) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("no problems to choose from")
	}

	prompt := promptui.Select{
		Label: "Select a problem",
		Items: items,
		Size:  15,
		Templates: &promptui.SelectTemplates{
			Active:   "> {{ .Label }} ({{ .Description }})",
			Inactive: "  {{ .Label }} ({{ .Description }})",
			Selected: "{{ .Label }}",
			Details:  "Difficulty: {{ .Description }}  Pass rate: {{ .Detail }}",
		},
		Searcher: func(input string, index int) bool {
			return containsFold(items[index].Label, input)
		},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", mapPromptErr(err)
	}
	return items[i].Value, nil
}

// ChooseLanguage runs an interactive select over the supported languages.
// Dismissal returns ErrCancelled.
func ChooseLanguage(languages []string) (string, error) {
	prompt := promptui.Select{
		Label: "Select a language",
		Items: languages,
		Size:  len(languages),
	}
	_, lang, err := prompt.Run()
	if err != nil {
		return "", mapPromptErr(err)
	}
	return lang, nil
}

// Answers for the remember-language question.
const (
	answerYes     = "Yes"
	answerNotNow  = "Not now"
	answerDismiss = "Don't ask again"
)

// ConfirmDefault asks whether to remember the chosen language as the
// default. remember means persist it; dismiss means stop asking. Prompt
// dismissal counts as "not now".
func ConfirmDefault(language string) (remember, dismiss bool, err error) {
	prompt := promptui.Select{
		Label: fmt.Sprintf("Always use %s for new problems?", language),
		Items: []string{answerYes, answerNotNow, answerDismiss},
	}
	_, answer, err := prompt.Run()
	if err != nil {
		if errors.Is(mapPromptErr(err), ErrCancelled) {
			return false, false, nil
		}
		return false, false, err
	}
	switch answer {
	case answerYes:
		return true, false, nil
	case answerDismiss:
		return false, true, nil
	default:
		return false, false, nil
	}
}

// mapPromptErr converts promptui's interrupt/abort errors into ErrCancelled.
func mapPromptErr(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrEOF) {
		return ErrCancelled
	}
	return err
}

// containsFold is a case-insensitive substring check for the picker search.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
