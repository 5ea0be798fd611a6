package pitches

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo for dev and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Pitch // userId -> pitches
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Pitch),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, pitch Pitch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[pitch.UserID] = append(r.data[pitch.UserID], pitch)
	return nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Pitch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Pitch, len(r.data[userID]))
	copy(out, r.data[userID])
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID, id string) (Pitch, error) {
	if err := ctx.Err(); err != nil {
		return Pitch{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, pitch := range r.data[userID] {
		if pitch.ID == id {
			return pitch, nil
		}
	}
	return Pitch{}, ErrNotFound
}

func (r *MemoryRepo) Update(ctx context.Context, userID, id string, update Update) (Pitch, error) {
	if err := ctx.Err(); err != nil {
		return Pitch{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.data[userID]
	for i, pitch := range items {
		if pitch.ID != id {
			continue
		}
		if update.PitchStatus != nil {
			pitch.PitchStatus = *update.PitchStatus
		}
		if update.GeneratedPitch != nil {
			pitch.GeneratedPitch = *update.GeneratedPitch
		}
		pitch.UpdatedAt = time.Now().UTC()
		items[i] = pitch
		return pitch, nil
	}
	return Pitch{}, ErrNotFound
}

func (r *MemoryRepo) Delete(ctx context.Context, userID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.data[userID]
	for i, pitch := range items {
		if pitch.ID == id {
			r.data[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
