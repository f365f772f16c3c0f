package bank

import (
	"fmt"
	"strings"
)

// Validate re-checks the compiled-in bank. Used by tests and the CLI.
func Validate() error {
	return validateQuestions(b.questions)
}

// validateQuestions performs all structural checks on a question set.
// Returns a combined error describing all problems found, or nil if valid.
func validateQuestions(questions []Question) error {
	var errs []string

	idSet := make(map[string]bool, len(questions))
	counts := make(map[Dimension]int)

	for _, q := range questions {
		if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		idSet[q.ID] = true

		if !q.Dimension.Valid() {
			errs = append(errs, fmt.Sprintf("question %q has unknown dimension %q", q.ID, q.Dimension))
			continue
		}
		counts[q.Dimension]++

		first, second := q.Dimension.Letters()
		if q.A.Value != first || q.B.Value != second {
			errs = append(errs, fmt.Sprintf("question %q options must map to %s/%s, got %s/%s",
				q.ID, first, second, q.A.Value, q.B.Value))
		}

		if !q.Text.Complete() {
			errs = append(errs, fmt.Sprintf("question %q is missing prompt text", q.ID))
		}
		if !q.A.Text.Complete() || !q.B.Text.Complete() {
			errs = append(errs, fmt.Sprintf("question %q is missing option text", q.ID))
		}
	}

	for _, dim := range AllDimensions() {
		if n := counts[dim]; n <= QuestionsPerDimension {
			errs = append(errs, fmt.Sprintf("dimension %s has %d questions, need more than %d",
				dim, n, QuestionsPerDimension))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
