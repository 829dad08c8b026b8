package evaluation

import (
	"errors"
	"fmt"

	"github.com/Egham-7/cover-letter-ai/internal/models"
)

// StructuredParser turns raw model output into a LetterEvaluation.
type StructuredParser interface {
	Parse(raw string) (models.LetterEvaluation, error)
}

// ChainParser tries each parser in order and returns the first success.
type ChainParser struct {
	parsers []StructuredParser
}

// NewChainParser builds a chain from the given parsers.
func NewChainParser(parsers ...StructuredParser) *ChainParser {
	return &ChainParser{parsers: parsers}
}

// NewParser returns the default strict-then-salvage chain.
func NewParser() *ChainParser {
	return NewChainParser(NewStrictParser(), NewSalvageParser())
}

// Parse returns models.ErrParseFailure, wrapped with every stage's error, when
// no parser succeeds.
func (c *ChainParser) Parse(raw string) (models.LetterEvaluation, error) {
	errs := make([]error, 0, len(c.parsers))
	for _, p := range c.parsers {
		result, err := p.Parse(raw)
		if err == nil {
			return result, nil
		}
		errs = append(errs, err)
	}
	return models.LetterEvaluation{}, fmt.Errorf("%w: %w", models.ErrParseFailure, errors.Join(errs...))
}
