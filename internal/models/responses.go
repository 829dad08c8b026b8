package models

// LetterResponse is the body of a generate-letter response.
type LetterResponse struct {
	Letter string         `json:"letter"`
	Source ResponseSource `json:"source"`
	Model  string         `json:"model,omitempty"`
	Reason DegradedReason `json:"reason,omitempty"`
}

// EvaluationResponse is the body of an evaluate-letter response.
type EvaluationResponse struct {
	Evaluation LetterEvaluation `json:"evaluation"`
	Source     ResponseSource   `json:"source"`
	Model      string           `json:"model,omitempty"`
	Reason     DegradedReason   `json:"reason,omitempty"`
}

// SuggestionResponse is the body of a field-suggestion response.
type SuggestionResponse struct {
	Suggestion string         `json:"suggestion"`
	Source     ResponseSource `json:"source"`
	Model      string         `json:"model,omitempty"`
	Reason     DegradedReason `json:"reason,omitempty"`
}

// DebugJSONRequest is the body of the JSON extraction debug route.
type DebugJSONRequest struct {
	Prompt string `json:"prompt"`
}

func (r *DebugJSONRequest) Validate() error {
	return requireFields(map[string]string{"prompt": r.Prompt}, "prompt")
}
