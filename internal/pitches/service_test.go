package pitches

import (
	"context"
	"errors"
	"testing"

	"pitchmaker-backend/internal/jobdescriptions"
	"pitchmaker-backend/internal/llm"
	"pitchmaker-backend/internal/pitchhistory"
	"pitchmaker-backend/internal/profiles"
)

type fakeLLM struct {
	response string
	err      error
	lastIn   llm.PitchInput
}

func (f *fakeLLM) GeneratePitch(ctx context.Context, input llm.PitchInput) (string, error) {
	f.lastIn = input
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newTestService(client llm.Client) (*Service, *pitchhistory.MemoryRepo, *profiles.Service) {
	historyRepo := pitchhistory.NewMemoryRepo()
	profileSvc := profiles.NewService(profiles.NewMemoryRepo())
	svc := &Service{
		Repo:            NewMemoryRepo(),
		LLM:             client,
		Profiles:        profileSvc,
		JobDescriptions: &jobdescriptions.Service{Repo: jobdescriptions.NewMemoryRepo()},
		History:         &pitchhistory.Service{Repo: historyRepo},
	}
	return svc, historyRepo, profileSvc
}

func TestGenerateRequiresJobDescription(t *testing.T) {
	svc, _, _ := newTestService(&fakeLLM{response: "letter"})

	_, err := svc.Generate(context.Background(), "user-1", GenerateInput{JobDescription: "  "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGeneratePersistsPitchAndHistory(t *testing.T) {
	client := &fakeLLM{response: "Dear Hiring Manager, I am excited to apply."}
	svc, historyRepo, profileSvc := newTestService(client)

	name := "Ada Lovelace"
	skills := "Go, SQL"
	if _, err := profileSvc.Update(context.Background(), "user-1", "ada@example.com", profiles.Update{
		FullName: &name,
		Skills:   &skills,
	}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	pitch, err := svc.Generate(context.Background(), "user-1", GenerateInput{
		JobDescription:  "Position: Backend Engineer\nCompany: Acme Corp\nBuild services.",
		UseSavedProfile: true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if pitch.GeneratedPitch != client.response {
		t.Errorf("generated_pitch = %q", pitch.GeneratedPitch)
	}
	if pitch.PitchStatus != StatusGenerated {
		t.Errorf("pitch_status = %q, want %q", pitch.PitchStatus, StatusGenerated)
	}
	if pitch.JobTitle != "Backend Engineer" || pitch.CompanyName != "Acme Corp" {
		t.Errorf("extractor backfill failed: title=%q company=%q", pitch.JobTitle, pitch.CompanyName)
	}
	if client.lastIn.Profile == nil || client.lastIn.Profile.FullName != "Ada Lovelace" {
		t.Errorf("prompt profile not embedded: %+v", client.lastIn.Profile)
	}

	stored, err := svc.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected 1 stored pitch, got %d", len(stored))
	}

	entries, err := historyRepo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.PitchID != pitch.ID {
		t.Errorf("history pitch_id = %q, want %q", entry.PitchID, pitch.ID)
	}
	if entry.GenerationMethod != pitchhistory.MethodAI {
		t.Errorf("generation_method = %q", entry.GenerationMethod)
	}
	if entry.UserDetailsSnapshot == "" {
		t.Error("expected a profile snapshot in history")
	}
}

func TestGenerateSkipsProfileWhenOptedOut(t *testing.T) {
	client := &fakeLLM{response: "letter"}
	svc, _, profileSvc := newTestService(client)

	name := "Ada Lovelace"
	if _, err := profileSvc.Update(context.Background(), "user-1", "ada@example.com", profiles.Update{FullName: &name}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	if _, err := svc.Generate(context.Background(), "user-1", GenerateInput{
		JobDescription:  "A posting.",
		UseSavedProfile: false,
	}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if client.lastIn.Profile != nil {
		t.Errorf("expected no profile in prompt, got %+v", client.lastIn.Profile)
	}
}

func TestGenerateFailsHardOnProviderError(t *testing.T) {
	svc, historyRepo, _ := newTestService(&fakeLLM{err: errors.New("upstream 503")})

	_, err := svc.Generate(context.Background(), "user-1", GenerateInput{JobDescription: "A posting."})
	if err == nil {
		t.Fatal("expected error")
	}

	stored, err := svc.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(stored) != 0 {
		t.Errorf("expected no stored pitch after failure, got %d", len(stored))
	}
	entries, _ := historyRepo.ListByUser(context.Background(), "user-1")
	if len(entries) != 0 {
		t.Errorf("expected no history after failure, got %d", len(entries))
	}
}

func TestGenerateDropsForeignJobDescriptionID(t *testing.T) {
	client := &fakeLLM{response: "letter"}
	svc, _, _ := newTestService(client)

	other, err := svc.JobDescriptions.Create(context.Background(), "user-2", jobdescriptions.CreateInput{Description: "Their posting."})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	pitch, err := svc.Generate(context.Background(), "user-1", GenerateInput{
		JobDescription:   "A posting.",
		JobDescriptionID: other.ID,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if pitch.JobDescriptionID != "" {
		t.Errorf("expected foreign job_description_id dropped, got %q", pitch.JobDescriptionID)
	}
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newTestService(&fakeLLM{response: "letter"})

	pitch, err := svc.Generate(context.Background(), "user-1", GenerateInput{JobDescription: "A posting."})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	bad := "archived"
	if _, err := svc.Update(context.Background(), "user-1", pitch.ID, Update{PitchStatus: &bad}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	favorited := StatusFavorited
	updated, err := svc.Update(context.Background(), "user-1", pitch.ID, Update{PitchStatus: &favorited})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.PitchStatus != StatusFavorited {
		t.Errorf("pitch_status = %q, want %q", updated.PitchStatus, StatusFavorited)
	}
}
