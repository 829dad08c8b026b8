package fallback

import (
	"strings"
	"testing"
	"time"

	"github.com/Egham-7/cover-letter-ai/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, time.May, 7, 9, 30, 0, 0, time.UTC)
}

func TestLetterTemplate(t *testing.T) {
	p := NewWithClock(fixedNow)
	letter := p.Letter(models.LetterGenerationRequest{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "555-0100",
		JobTitle:    "Data Analyst",
		CompanyName: "Acme",
		Skills:      "SQL, Python",
	})

	require.True(t, strings.HasPrefix(letter, "May 7, 2024\n\nJane Doe\njane@example.com\n555-0100\n\nHiring Manager\nAcme\n\nDear Hiring Manager,"))
	assert.Contains(t, letter, "interest in the Data Analyst position at Acme")
	assert.Contains(t, letter, "skills in SQL, Python")
	assert.NotContains(t, letter, "Additionally,")
	assert.True(t, strings.HasSuffix(letter, "Sincerely,\nJane Doe"))
}

func TestLetterIncludesNotes(t *testing.T) {
	p := NewWithClock(fixedNow)
	letter := p.Letter(models.LetterGenerationRequest{
		FullName:        "Sam Lee",
		JobTitle:        "Project Manager",
		CompanyName:     "Globex",
		Skills:          "Leadership",
		AdditionalNotes: "I have led remote teams.",
	})

	assert.Contains(t, letter, "Additionally, I have led remote teams.")
}

func TestLetterIsDeterministic(t *testing.T) {
	p := NewWithClock(fixedNow)
	req := models.LetterGenerationRequest{FullName: "A", JobTitle: "B", CompanyName: "C", Skills: "D"}
	assert.Equal(t, p.Letter(req), p.Letter(req))
}

func TestEvaluation(t *testing.T) {
	p := New()
	got := p.Evaluation()

	assert.Equal(t, 75, got.Score)
	assert.NotEmpty(t, got.Feedback)
	assert.Len(t, got.Strengths, 4)
	assert.Len(t, got.Improvements, 4)

	got.Strengths[0] = "mutated"
	assert.NotEqual(t, "mutated", p.Evaluation().Strengths[0])
}

func TestSuggestion(t *testing.T) {
	p := New()

	assert.Equal(t,
		"Problem-solving, JavaScript, React, Node.js, API development, Git, Agile methodologies, Communication",
		p.Suggestion(FieldSkills, "Software Engineer", "Acme"))
	assert.Equal(t,
		"Communication, Problem-solving, Teamwork, Attention to detail, Time management, Adaptability, Technical proficiency",
		p.Suggestion(FieldSkills, "Astronaut", "Acme"))
	assert.Contains(t, p.Suggestion(FieldAdditionalNotes, "Astronaut", "Acme"), "drawn to Acme's innovative approach")
	assert.Contains(t, p.Suggestion(FieldAdditionalNotes, "Astronaut", ""), "drawn to your company's innovative approach")
	assert.Equal(t, "[Suggestion for hobbies]", p.Suggestion("hobbies", "Software Engineer", "Acme"))
}

func TestPredefined(t *testing.T) {
	s, ok := Predefined(FieldSkills, "Software Engineer")
	require.True(t, ok)
	assert.Equal(t, "Problem-solving, JavaScript, React, Node.js, API development, Git, Agile methodologies, Communication", s)

	s, ok = Predefined(FieldAdditionalNotes, "Unknown Role")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(s, "I am particularly drawn to your company's"))

	_, ok = Predefined("fullName", "Software Engineer")
	assert.False(t, ok)
}
