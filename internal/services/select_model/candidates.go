package select_model

import (
	"fmt"
	"iter"

	"github.com/Egham-7/cover-letter-ai/internal/models"
	"github.com/Egham-7/cover-letter-ai/internal/utils"
)

// Candidate is one provider/model pair that may serve a request.
type Candidate struct {
	Provider string
	Model    string
}

func (c Candidate) String() string {
	return c.Provider + ":" + c.Model
}

// ParseCandidates parses "provider:model" identifiers, keeping their order.
// Bare model names are treated as gemini models.
func ParseCandidates(specs []string) ([]Candidate, error) {
	candidates := make([]Candidate, 0, len(specs))
	for _, spec := range specs {
		provider, model, err := utils.ParseProviderModel(spec, models.ProviderGemini)
		if err != nil {
			return nil, fmt.Errorf("invalid model candidate: %w", err)
		}
		candidates = append(candidates, Candidate{Provider: provider, Model: model})
	}
	return candidates, nil
}

// Ordered yields candidates in list order.
func Ordered(candidates []Candidate) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		for _, c := range candidates {
			if !yield(c) {
				return
			}
		}
	}
}

// Preferring yields first, when set, followed by the rest of seq without
// repeating it.
func Preferring(first Candidate, seq iter.Seq[Candidate]) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		if !yield(first) {
			return
		}
		for c := range seq {
			if c == first {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Limit stops seq after n candidates.
func Limit(seq iter.Seq[Candidate], n int) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		if n <= 0 {
			return
		}
		taken := 0
		for c := range seq {
			if !yield(c) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}
}

// Filter keeps candidates accepted by keep.
func Filter(seq iter.Seq[Candidate], keep func(Candidate) bool) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		for c := range seq {
			if keep(c) && !yield(c) {
				return
			}
		}
	}
}
