package evaluation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Egham-7/cover-letter-ai/internal/models"
	"github.com/Egham-7/cover-letter-ai/internal/utils"

	"github.com/xeipuuv/gojsonschema"
)

// A zero score counts as missing, as does an empty feedback string.
const evaluationSchema = `{
  "type": "object",
  "required": ["score", "feedback", "strengths", "improvements"],
  "properties": {
    "score": {"type": "integer", "minimum": 1, "maximum": 100},
    "feedback": {"type": "string", "minLength": 1},
    "strengths": {"type": "array", "items": {"type": "string"}},
    "improvements": {"type": "array", "items": {"type": "string"}}
  }
}`

var compiledSchema = mustCompileSchema(evaluationSchema)

func mustCompileSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("evaluation schema: %v", err))
	}
	return schema
}

// StrictParser extracts the JSON payload and validates it against the
// evaluation schema.
type StrictParser struct {
	schema *gojsonschema.Schema
}

func NewStrictParser() *StrictParser {
	return &StrictParser{schema: compiledSchema}
}

func (p *StrictParser) Parse(raw string) (models.LetterEvaluation, error) {
	payload := utils.ExtractJSON(raw)

	result, err := p.schema.Validate(gojsonschema.NewStringLoader(payload))
	if err != nil {
		return models.LetterEvaluation{}, fmt.Errorf("strict: invalid json: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return models.LetterEvaluation{}, fmt.Errorf("strict: schema validation failed: %s", strings.Join(msgs, "; "))
	}

	var evaluation models.LetterEvaluation
	if err := json.Unmarshal([]byte(payload), &evaluation); err != nil {
		return models.LetterEvaluation{}, fmt.Errorf("strict: decode: %w", err)
	}
	return evaluation, nil
}
