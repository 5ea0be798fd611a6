package pitches

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pitchmaker-backend/internal/extract"
	"pitchmaker-backend/internal/jobdescriptions"
	"pitchmaker-backend/internal/llm"
	"pitchmaker-backend/internal/pitchhistory"
	"pitchmaker-backend/internal/profiles"
	"pitchmaker-backend/internal/shared/telemetry"
)

// Service orchestrates pitch generation and the pitch store.
type Service struct {
	Repo            Repo
	LLM             llm.Client
	Profiles        *profiles.Service
	JobDescriptions *jobdescriptions.Service
	History         *pitchhistory.Service
}

// GenerateInput carries the client-provided fields for one generation.
type GenerateInput struct {
	JobDescription   string
	JobTitle         string
	CompanyName      string
	JobDescriptionID string
	UseSavedProfile  bool
}

// Generate produces a cover letter for the given job posting and persists
// it. The saved profile is embedded in the prompt unless the caller opted
// out; missing title and company are filled best-effort from the posting
// text. Generation failures are returned as-is so the transport layer can
// surface them; only the history snapshot is best-effort.
func (s *Service) Generate(ctx context.Context, userID string, in GenerateInput) (Pitch, error) {
	jobDescription := strings.TrimSpace(in.JobDescription)
	if jobDescription == "" {
		return Pitch{}, fmt.Errorf("%w: job_description is required", ErrInvalidInput)
	}

	var profile *llm.CandidateProfile
	if in.UseSavedProfile {
		profile = s.loadProfile(ctx, userID)
	}

	jobTitle := strings.TrimSpace(in.JobTitle)
	companyName := strings.TrimSpace(in.CompanyName)
	if jobTitle == "" || companyName == "" {
		fields := extract.ParseJobPosting(jobDescription)
		if jobTitle == "" {
			jobTitle = fields.JobTitle
		}
		if companyName == "" {
			companyName = fields.CompanyName
		}
	}

	jobDescriptionID := strings.TrimSpace(in.JobDescriptionID)
	if jobDescriptionID != "" && s.JobDescriptions != nil {
		if _, err := s.JobDescriptions.Get(ctx, userID, jobDescriptionID); err != nil {
			// A stale or foreign reference does not block generation.
			telemetry.Info("dropping unknown job_description_id", map[string]any{
				"userId":           userID,
				"jobDescriptionId": jobDescriptionID,
			})
			jobDescriptionID = ""
		}
	}

	generated, err := s.LLM.GeneratePitch(ctx, llm.PitchInput{
		JobDescription: jobDescription,
		JobTitle:       jobTitle,
		CompanyName:    companyName,
		Profile:        profile,
	})
	if err != nil {
		return Pitch{}, fmt.Errorf("generate pitch: %w", err)
	}

	now := time.Now().UTC()
	pitch := Pitch{
		ID:                uuid.NewString(),
		UserID:            userID,
		JobDescriptionID:  jobDescriptionID,
		JobTitle:          jobTitle,
		CompanyName:       companyName,
		RawJobDescription: jobDescription,
		GeneratedPitch:    generated,
		PitchStatus:       StatusGenerated,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.Repo.Create(ctx, pitch); err != nil {
		return Pitch{}, fmt.Errorf("save pitch: %w", err)
	}

	if s.History != nil {
		_, err := s.History.Record(ctx, pitchhistory.Entry{
			UserID:              userID,
			PitchID:             pitch.ID,
			JobTitle:            jobTitle,
			CompanyName:         companyName,
			JobDescription:      jobDescription,
			UserDetailsSnapshot: profileSnapshot(profile),
			GeneratedPitch:      generated,
			GenerationMethod:    pitchhistory.MethodAI,
		})
		if err != nil {
			telemetry.Error("failed to record pitch history", map[string]any{
				"userId":  userID,
				"pitchId": pitch.ID,
				"error":   err.Error(),
			})
		}
	}
	return pitch, nil
}

// List returns the user's pitches, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Pitch, error) {
	items, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list pitches: %w", err)
	}
	if items == nil {
		items = []Pitch{}
	}
	return items, nil
}

// Get fetches a single pitch owned by the user.
func (s *Service) Get(ctx context.Context, userID, id string) (Pitch, error) {
	return s.Repo.GetByID(ctx, userID, id)
}

// Update applies a partial update. A pitch_status outside the allowed set
// is rejected with ErrInvalidInput.
func (s *Service) Update(ctx context.Context, userID, id string, update Update) (Pitch, error) {
	if update.PitchStatus != nil && !ValidStatus(*update.PitchStatus) {
		return Pitch{}, fmt.Errorf("%w: invalid pitch_status %q", ErrInvalidInput, *update.PitchStatus)
	}
	if update.GeneratedPitch != nil && strings.TrimSpace(*update.GeneratedPitch) == "" {
		return Pitch{}, fmt.Errorf("%w: generated_pitch cannot be empty", ErrInvalidInput)
	}
	return s.Repo.Update(ctx, userID, id, update)
}

// Delete removes a pitch owned by the user.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.Repo.Delete(ctx, userID, id)
}

func (s *Service) loadProfile(ctx context.Context, userID string) *llm.CandidateProfile {
	if s.Profiles == nil {
		return nil
	}
	profile, err := s.Profiles.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, profiles.ErrNotFound) {
			telemetry.Error("failed to load profile for generation", map[string]any{
				"userId": userID,
				"error":  err.Error(),
			})
		}
		return nil
	}
	return &llm.CandidateProfile{
		FullName:          profile.FullName,
		Email:             profile.Email,
		BackgroundDetails: profile.BackgroundDetails,
		Skills:            profile.Skills,
		Experience:        profile.Experience,
		Education:         profile.Education,
	}
}

func profileSnapshot(profile *llm.CandidateProfile) string {
	if profile == nil {
		return ""
	}
	var b strings.Builder
	appendField := func(label, value string) {
		if value == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(value)
	}
	appendField("Name", profile.FullName)
	appendField("Email", profile.Email)
	appendField("Background", profile.BackgroundDetails)
	appendField("Skills", profile.Skills)
	appendField("Experience", profile.Experience)
	appendField("Education", profile.Education)
	return b.String()
}
