package fallback

import (
	"fmt"
	"strings"
	"time"

	"github.com/Egham-7/cover-letter-ai/internal/models"
)

const letterDateLayout = "January 2, 2006"

const (
	defaultFeedback = "This is a solid cover letter that clearly states your interest in the position and highlights your relevant skills. It's concise and professional, though it could benefit from more specific examples of your achievements."
	defaultScore    = 75
)

var (
	defaultStrengths = []string{
		"Clear statement of interest in the specific position",
		"Mentions relevant skills and qualifications",
		"Professional tone and formatting",
		"Appropriate length and structure",
	}
	defaultImprovements = []string{
		"Add specific examples of past achievements",
		"Include more details about why you're interested in this company specifically",
		"Mention how your skills would solve specific problems for the employer",
		"Customize the closing to be more memorable",
	}
)

// Provider produces deterministic offline content. It never fails and never
// touches the network.
type Provider struct {
	now func() time.Time
}

// New returns a provider dated by the wall clock.
func New() *Provider {
	return &Provider{now: time.Now}
}

// NewWithClock returns a provider that dates letters with now.
func NewWithClock(now func() time.Time) *Provider {
	return &Provider{now: now}
}

// Letter renders the template letter for req.
func (p *Provider) Letter(req models.LetterGenerationRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", p.now().Format(letterDateLayout))
	fmt.Fprintf(&b, "%s\n%s\n%s\n\n", req.FullName, req.Email, req.Phone)
	fmt.Fprintf(&b, "Hiring Manager\n%s\n\n", req.CompanyName)
	b.WriteString("Dear Hiring Manager,\n\n")
	fmt.Fprintf(&b, "I am writing to express my interest in the %s position at %s. With my background and skills in %s, I believe I would be a valuable addition to your team.\n\n",
		req.JobTitle, req.CompanyName, req.Skills)
	fmt.Fprintf(&b, "Throughout my career, I have developed expertise in %s. I am confident that my experience and skills align well with the requirements of the %s role at %s.\n\n",
		req.Skills, req.JobTitle, req.CompanyName)
	if notes := strings.TrimSpace(req.AdditionalNotes); notes != "" {
		fmt.Fprintf(&b, "Additionally, %s\n\n", notes)
	}
	fmt.Fprintf(&b, "I am excited about the opportunity to bring my unique perspective and expertise to %s. I look forward to discussing how my background, skills, and experiences would benefit your organization.\n\n",
		req.CompanyName)
	b.WriteString("Thank you for considering my application. I look forward to the possibility of working with you.\n\n")
	fmt.Fprintf(&b, "Sincerely,\n%s", req.FullName)

	return b.String()
}

// Evaluation returns the fixed offline review.
func (p *Provider) Evaluation() models.LetterEvaluation {
	return models.LetterEvaluation{
		Score:        defaultScore,
		Feedback:     defaultFeedback,
		Strengths:    append([]string(nil), defaultStrengths...),
		Improvements: append([]string(nil), defaultImprovements...),
	}
}
