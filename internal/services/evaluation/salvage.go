package evaluation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Egham-7/cover-letter-ai/internal/models"
)

var (
	scorePattern        = regexp.MustCompile(`"score"\s*:\s*(\d+)`)
	feedbackPattern     = regexp.MustCompile(`"feedback"\s*:\s*"([^"]+)"`)
	strengthsPattern    = regexp.MustCompile(`(?s)"strengths"\s*:\s*\[(.*?)\]`)
	improvementsPattern = regexp.MustCompile(`(?s)"improvements"\s*:\s*\[(.*?)\]`)
	quotedItem          = regexp.MustCompile(`^"(.*)"$`)
)

// SalvageParser recovers the four evaluation fields from malformed output by
// searching the raw text for each one independently.
type SalvageParser struct{}

func NewSalvageParser() *SalvageParser {
	return &SalvageParser{}
}

func (SalvageParser) Parse(raw string) (models.LetterEvaluation, error) {
	score := scorePattern.FindStringSubmatch(raw)
	feedback := feedbackPattern.FindStringSubmatch(raw)
	strengths := strengthsPattern.FindStringSubmatch(raw)
	improvements := improvementsPattern.FindStringSubmatch(raw)

	if score == nil || feedback == nil || strengths == nil || improvements == nil {
		return models.LetterEvaluation{}, errors.New("salvage: required fields not found")
	}

	value, err := strconv.Atoi(score[1])
	if err != nil || value > 100 {
		return models.LetterEvaluation{}, fmt.Errorf("salvage: score %q out of range", score[1])
	}

	return models.LetterEvaluation{
		Score:        value,
		Feedback:     feedback[1],
		Strengths:    splitList(strengths[1]),
		Improvements: splitList(improvements[1]),
	}, nil
}

// splitList splits a JSON-ish array body on commas, trimming whitespace and
// surrounding quotes and dropping empty items.
func splitList(body string) []string {
	items := make([]string, 0, 4)
	for part := range strings.SplitSeq(body, ",") {
		item := strings.TrimSpace(part)
		item = quotedItem.ReplaceAllString(item, "$1")
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
