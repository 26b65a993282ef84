package wordio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/quintle/quintle/candidate"
	"github.com/quintle/quintle/constraint"
	"github.com/quintle/quintle/feedback"
	"github.com/quintle/quintle/word"
)

// Remaining is the surviving-candidate half of one outcome.
type Remaining struct {
	Count int      `json:"count"`
	Words []string `json:"words"`
}

// Outcome is the solver state after one hypothetical feedback pattern for an
// opening guess: the derived constraint document and the candidates that
// survive it.
type Outcome struct {
	Criteria  constraint.Document `json:"criteria"`
	Remaining Remaining           `json:"remaining_candidates"`
}

// OutcomeSet maps a pattern string (e.g. "XGXAX") to its outcome.
type OutcomeSet map[string]Outcome

// BuildOutcomes precomputes the outcome of every possible feedback pattern
// (3^L of them) for one opening guess against the full word list, dropping
// patterns no candidate can produce — an empty outcome carries no
// information and is pruned rather than stored.
//
// Complexity: O(3^L) filters of O(W) each; for L=5 that is 243 filters.
func BuildOutcomes(guess word.Word, list *word.List) (OutcomeSet, error) {
	if len(guess) != list.Length() {
		return nil, fmt.Errorf("wordio: outcomes: %w", constraint.ErrLengthMismatch)
	}

	idx := candidate.NewListIndex(list)
	out := make(OutcomeSet)
	for _, p := range feedback.AllPatterns(list.Length()) {
		cs, err := constraint.FromFeedback(guess, p)
		if err != nil {
			return nil, fmt.Errorf("wordio: outcomes: %w", err)
		}
		left, err := idx.Filter(cs)
		if err != nil {
			return nil, fmt.Errorf("wordio: outcomes: %w", err)
		}
		if len(left) == 0 {
			continue
		}
		words := make([]string, len(left))
		for i, w := range left {
			words[i] = string(w)
		}
		out[p.String()] = Outcome{
			Criteria:  cs.Document(),
			Remaining: Remaining{Count: len(left), Words: words},
		}
	}

	return out, nil
}

// SaveOutcomes writes an outcome set to path as indented JSON.
func SaveOutcomes(path string, outcomes OutcomeSet) error {
	data, err := json.MarshalIndent(outcomes, "", "    ")
	if err != nil {
		return fmt.Errorf("wordio: encode outcomes: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("wordio: write outcomes: %w", err)
	}

	return nil
}

// LoadOutcomes reads an outcome set from path.
func LoadOutcomes(path string) (OutcomeSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wordio: read outcomes: %w", err)
	}
	var out OutcomeSet
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("wordio: decode outcomes: %w", err)
	}

	return out, nil
}
