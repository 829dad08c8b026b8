package letters

import (
	"encoding/json"
	"fmt"

	"github.com/Egham-7/cover-letter-ai/internal/models"
)

// suggestionValuePrefix is how much of the current field value goes into a
// suggestion key. Longer edits of the same field share an entry.
const suggestionValuePrefix = 20

// Request structs hold only strings, so Marshal cannot fail and writes fields
// in declaration order.

func letterKey(req models.LetterGenerationRequest) string {
	raw, _ := json.Marshal(req)
	return "letter:" + string(raw)
}

func evaluationKey(req models.LetterEvaluationRequest) string {
	raw, _ := json.Marshal(req)
	return "evaluation:" + string(raw)
}

func suggestionKey(req models.FieldSuggestionRequest) string {
	return fmt.Sprintf("suggestion:%s:%s:%s:%s", req.Field, req.JobTitle, req.CompanyName, runePrefix(req.CurrentValue, suggestionValuePrefix))
}

func runePrefix(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
