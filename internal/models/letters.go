package models

import "strings"

// LetterGenerationRequest carries the applicant details used to draft a letter.
// Field order is part of the cache key, do not reorder.
type LetterGenerationRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	JobTitle        string `json:"jobTitle"`
	CompanyName     string `json:"companyName"`
	Skills          string `json:"skills"`
	AdditionalNotes string `json:"additionalNotes,omitempty"`
	Resume          string `json:"resume,omitempty"`
}

// Validate reports the first missing required field.
func (r *LetterGenerationRequest) Validate() error {
	return requireFields(map[string]string{
		"fullName":    r.FullName,
		"jobTitle":    r.JobTitle,
		"companyName": r.CompanyName,
		"skills":      r.Skills,
	}, "fullName", "jobTitle", "companyName", "skills")
}

// LetterEvaluationRequest asks for a review of an existing letter.
type LetterEvaluationRequest struct {
	Letter      string `json:"letter"`
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
}

func (r *LetterEvaluationRequest) Validate() error {
	return requireFields(map[string]string{"letter": r.Letter}, "letter")
}

// FieldSuggestionRequest asks for a suggested value for one form field.
type FieldSuggestionRequest struct {
	Field        string `json:"field"`
	CurrentValue string `json:"currentValue"`
	JobTitle     string `json:"jobTitle"`
	CompanyName  string `json:"companyName"`
}

func (r *FieldSuggestionRequest) Validate() error {
	return requireFields(map[string]string{"field": r.Field}, "field")
}

// LetterEvaluation is the structured review returned for a letter.
type LetterEvaluation struct {
	Score        int      `json:"score"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

func requireFields(values map[string]string, order ...string) error {
	for _, name := range order {
		if strings.TrimSpace(values[name]) == "" {
			return NewValidationError(name+" is required", nil)
		}
	}
	return nil
}
