package letters

import (
	"fmt"
	"strings"

	"github.com/Egham-7/cover-letter-ai/internal/models"
	"github.com/Egham-7/cover-letter-ai/internal/services/fallback"
)

func letterPrompt(req models.LetterGenerationRequest) string {
	var b strings.Builder

	b.WriteString("Generate a professional cover letter for a job application with the following details:\n\n")
	fmt.Fprintf(&b, "Full Name: %s\n", req.FullName)
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	fmt.Fprintf(&b, "Phone: %s\n", req.Phone)
	fmt.Fprintf(&b, "Job Title: %s\n", req.JobTitle)
	fmt.Fprintf(&b, "Company Name: %s\n", req.CompanyName)
	fmt.Fprintf(&b, "Skills/Strengths: %s\n", req.Skills)
	if req.Resume != "" {
		fmt.Fprintf(&b, "Resume Information: %s\n", req.Resume)
	}
	if req.AdditionalNotes != "" {
		fmt.Fprintf(&b, "Additional Notes: %s\n", req.AdditionalNotes)
	}
	b.WriteString("\nThe cover letter should be professional, concise, and highlight the applicant's skills and qualifications for the position.\n")
	b.WriteString("Format it properly with date, address, salutation, body paragraphs, closing, and signature.\n")

	return b.String()
}

const evaluationShape = `{
  "score": number,
  "feedback": "detailed feedback text",
  "strengths": ["strength1", "strength2", "strength3"],
  "improvements": ["improvement1", "improvement2", "improvement3"]
}`

func evaluationPrompt(req models.LetterEvaluationRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an experienced HR Director evaluating a cover letter for a %s position at %s.\n\n", req.JobTitle, req.CompanyName)
	b.WriteString("Please evaluate the following cover letter and provide:\n")
	b.WriteString("1. A score from 0-100 indicating how likely this candidate would be invited for an interview\n")
	b.WriteString("2. Detailed feedback on the letter's strengths and weaknesses\n")
	b.WriteString("3. 3-5 specific strengths of the letter\n")
	b.WriteString("4. 3-5 specific areas for improvement\n\n")
	fmt.Fprintf(&b, "Cover Letter:\n%s\n\n", req.Letter)
	b.WriteString("IMPORTANT: Return ONLY a JSON object with the following structure, without any markdown formatting, code blocks, or additional text:\n")
	b.WriteString(evaluationShape)
	b.WriteString("\n")

	return b.String()
}

func suggestionPrompt(req models.FieldSuggestionRequest) string {
	switch req.Field {
	case fallback.FieldSkills:
		return fmt.Sprintf("Suggest 5-7 relevant skills and strengths for a %s position at %s. Current input: %q. Format as a comma-separated list.",
			req.JobTitle, req.CompanyName, req.CurrentValue)
	case fallback.FieldAdditionalNotes:
		return fmt.Sprintf("Suggest additional information that would be valuable to include in a cover letter for a %s position at %s. Current input: %q. Keep it concise (2-3 sentences).",
			req.JobTitle, req.CompanyName, req.CurrentValue)
	default:
		return fmt.Sprintf("Suggest a good %s for a %s position at %s. Current input: %q. Keep it concise.",
			req.Field, req.JobTitle, req.CompanyName, req.CurrentValue)
	}
}
