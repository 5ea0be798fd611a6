package pitches

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("pitch not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Update carries the mutable pitch fields; nil means leave unchanged.
type Update struct {
	PitchStatus    *string `json:"pitch_status"`
	GeneratedPitch *string `json:"generated_pitch"`
}

type Repo interface {
	Create(ctx context.Context, pitch Pitch) error
	ListByUser(ctx context.Context, userID string) ([]Pitch, error)
	GetByID(ctx context.Context, userID, id string) (Pitch, error)
	// Update applies the non-nil fields and returns the updated row;
	// ErrNotFound when absent or owned by another user.
	Update(ctx context.Context, userID, id string, update Update) (Pitch, error)
	Delete(ctx context.Context, userID, id string) error
}
