package pitchhistory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service owns pitch history business logic on top of a Repo.
type Service struct {
	Repo Repo
}

// Record stores a generation snapshot. The entry id and timestamp are
// assigned here; GenerationMethod defaults to ai.
func (s *Service) Record(ctx context.Context, entry Entry) (Entry, error) {
	if strings.TrimSpace(entry.UserID) == "" {
		return Entry{}, fmt.Errorf("record history: user id is required")
	}
	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now().UTC()
	if entry.GenerationMethod == "" {
		entry.GenerationMethod = MethodAI
	}
	if err := s.Repo.Create(ctx, entry); err != nil {
		return Entry{}, fmt.Errorf("record history: %w", err)
	}
	return entry, nil
}

// List returns the user's history, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Entry, error) {
	entries, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// ListDetailed returns the user's history joined with profile fields and
// the live pitch status.
func (s *Service) ListDetailed(ctx context.Context, userID string) ([]DetailedEntry, error) {
	entries, err := s.Repo.ListDetailedByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list detailed history: %w", err)
	}
	if entries == nil {
		entries = []DetailedEntry{}
	}
	return entries, nil
}

// Delete removes a history entry owned by the user.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.Repo.Delete(ctx, userID, id)
}
