package llm

import (
	"context"
	"errors"
)

// Client abstracts generative-text providers for pitch generation.
type Client interface {
	GeneratePitch(ctx context.Context, input PitchInput) (string, error)
}

// CandidateProfile carries the free-text profile fields embedded in prompts.
type CandidateProfile struct {
	FullName          string
	Email             string
	BackgroundDetails string
	Skills            string
	Experience        string
	Education         string
}

// PitchInput captures the inputs needed to generate one pitch.
type PitchInput struct {
	JobDescription string
	JobTitle       string
	CompanyName    string
	Profile        *CandidateProfile
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm provider not configured")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// GeneratePitch returns ErrNotConfigured.
func (PlaceholderClient) GeneratePitch(ctx context.Context, input PitchInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotConfigured
}
