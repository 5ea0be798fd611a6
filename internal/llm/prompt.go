package llm

import (
	"fmt"
	"strings"
)

const (
	fallbackName       = "Candidate"
	fallbackJobTitle   = "this Position"
	fallbackCompany    = "the Company"
	fallbackBackground = "Professional background not specified"
)

// BuildPitchPrompt renders the cover-letter prompt for a pitch request.
// Missing profile fields fall back to "Not specified" placeholders so the
// model never sees empty labels.
func BuildPitchPrompt(input PitchInput) string {
	profile := input.Profile
	if profile == nil {
		profile = &CandidateProfile{}
	}

	jobTitle := orDefault(input.JobTitle, fallbackJobTitle)
	company := orDefault(input.CompanyName, fallbackCompany)

	var b strings.Builder
	b.WriteString("Create a personalized, professional pitch letter for a job application. Here are the details:\n\n")
	b.WriteString("User Profile:\n")
	fmt.Fprintf(&b, "- Name: %s\n", orDefault(profile.FullName, fallbackName))
	if strings.TrimSpace(profile.Email) != "" {
		fmt.Fprintf(&b, "- Email: %s\n", profile.Email)
	}
	fmt.Fprintf(&b, "- Background: %s\n", orDefault(profile.BackgroundDetails, fallbackBackground))
	fmt.Fprintf(&b, "- Skills: %s\n", orDefault(profile.Skills, "Skills not specified"))
	fmt.Fprintf(&b, "- Experience: %s\n", orDefault(profile.Experience, "Experience not specified"))
	fmt.Fprintf(&b, "- Education: %s\n", orDefault(profile.Education, "Education not specified"))
	b.WriteString("\nJob Details:\n")
	fmt.Fprintf(&b, "- Position: %s\n", jobTitle)
	fmt.Fprintf(&b, "- Company: %s\n", company)
	fmt.Fprintf(&b, "- Job Description: %s\n", input.JobDescription)
	b.WriteString(`
Requirements:
1. Write a professional cover letter/pitch
2. Highlight relevant skills and experience that match the job requirements
3. Show enthusiasm for the specific role and company
4. Keep it concise but compelling (300-500 words)
5. Use a professional tone
6. Include specific examples where possible
7. End with a strong call to action

Write ONLY the cover letter text, as plain text that can be copied and used directly. No markdown formatting.`)
	return b.String()
}

func orDefault(value, def string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return def
}
