package fallback

import "fmt"

const (
	FieldSkills          = "skills"
	FieldAdditionalNotes = "additionalNotes"

	defaultRow = ""
)

var suggestionTable = map[string]map[string]string{
	FieldSkills: {
		"Software Engineer":               "Problem-solving, JavaScript, React, Node.js, API development, Git, Agile methodologies, Communication",
		"Data Analyst":                    "SQL, Python, Data visualization, Statistical analysis, Excel, Tableau, Attention to detail, Critical thinking",
		"Project Manager":                 "Leadership, Communication, Stakeholder management, Risk assessment, Agile methodologies, Budgeting, MS Project, Problem-solving",
		"Marketing Manager":               "Digital marketing, Social media strategy, Content creation, SEO/SEM, Analytics, Campaign management, Brand development, Communication",
		"Customer Service Representative": "Communication, Empathy, Problem-solving, Patience, Active listening, CRM software, Multitasking, Conflict resolution",
		defaultRow:                        "Communication, Problem-solving, Teamwork, Attention to detail, Time management, Adaptability, Technical proficiency",
	},
	FieldAdditionalNotes: {
		"Software Engineer":               "I am particularly drawn to your company's innovative approach to software development and commitment to technical excellence. My experience with similar technologies would allow me to contribute immediately to your development team.",
		"Data Analyst":                    "I am impressed by your company's data-driven approach to decision making. My analytical skills and attention to detail would be valuable assets in helping your organization derive meaningful insights from complex datasets.",
		"Project Manager":                 "I am excited about your company's project portfolio and growth trajectory. My experience managing cross-functional teams and delivering projects on time and within budget aligns perfectly with your needs.",
		"Marketing Manager":               "I admire your company's brand presence and creative campaigns. My experience developing integrated marketing strategies would help further strengthen your market position and drive customer engagement.",
		"Customer Service Representative": "I am impressed by your company's commitment to customer satisfaction. My empathetic approach to problem-solving and dedication to providing exceptional service would help maintain your excellent reputation.",
		defaultRow:                        "I am particularly drawn to your company's innovative approach to the industry and commitment to excellence. I believe my background would allow me to contribute immediately to your team's goals.",
	},
}

// companyNotesTemplate replaces the generic additionalNotes row when the
// company is known.
const companyNotesTemplate = "I am particularly drawn to %s's innovative approach to the industry and commitment to excellence. I believe my background would allow me to contribute immediately to your team's goals."

// Predefined returns the stored suggestion for field, using the field's default
// row for unknown job titles. ok is false for fields without a table.
func Predefined(field, jobTitle string) (string, bool) {
	rows, ok := suggestionTable[field]
	if !ok {
		return "", false
	}
	if s, ok := rows[jobTitle]; ok && jobTitle != defaultRow {
		return s, true
	}
	return rows[defaultRow], true
}

// Suggestion returns the offline suggestion for a field.
func (p *Provider) Suggestion(field, jobTitle, companyName string) string {
	rows, ok := suggestionTable[field]
	if !ok {
		return fmt.Sprintf("[Suggestion for %s]", field)
	}
	if s, ok := rows[jobTitle]; ok && jobTitle != defaultRow {
		return s
	}
	if field == FieldAdditionalNotes && companyName != "" {
		return fmt.Sprintf(companyNotesTemplate, companyName)
	}
	return rows[defaultRow]
}
