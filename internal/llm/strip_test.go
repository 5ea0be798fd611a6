package llm

import (
	"strings"
	"testing"
)

func TestStripMarkdown(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"emphasis and heading", "**Hello** #World", "Hello World"},
		{"single asterisks", "a *b* c", "a b c"},
		{"double hash", "## Heading\nbody", "Heading\nbody"},
		{"plain text untouched", "Dear Hiring Manager,", "Dear Hiring Manager,"},
		{"trims boundaries", "  \n**Hi**\n  ", "Hi"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripMarkdown(tc.in); got != tc.want {
				t.Fatalf("StripMarkdown(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestBuildPitchPromptFallbacks(t *testing.T) {
	prompt := BuildPitchPrompt(PitchInput{JobDescription: "Build APIs in Go."})
	for _, want := range []string{
		"Name: Candidate",
		"Background: Professional background not specified",
		"Skills: Skills not specified",
		"Position: this Position",
		"Company: the Company",
		"Job Description: Build APIs in Go.",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPitchPromptUsesProfile(t *testing.T) {
	prompt := BuildPitchPrompt(PitchInput{
		JobDescription: "Ship backend services.",
		JobTitle:       "Senior Backend Engineer",
		CompanyName:    "Globex Inc",
		Profile: &CandidateProfile{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
			Skills:   "Go, SQL",
		},
	})
	for _, want := range []string{
		"Name: Ada Lovelace",
		"Email: ada@example.com",
		"Skills: Go, SQL",
		"Position: Senior Backend Engineer",
		"Company: Globex Inc",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
