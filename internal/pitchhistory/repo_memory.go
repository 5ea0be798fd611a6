package pitchhistory

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo for dev and tests.
// Detailed listings return the bare entries; the profile and pitch status
// joins are a database view concern.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Entry // userId -> history entries
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Entry),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, entry Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[entry.UserID] = append(r.data[entry.UserID], entry)
	return nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, len(r.data[userID]))
	copy(out, r.data[userID])
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) ListDetailedByUser(ctx context.Context, userID string) ([]DetailedEntry, error) {
	entries, err := r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]DetailedEntry, len(entries))
	for i, entry := range entries {
		out[i] = DetailedEntry{Entry: entry}
	}
	return out, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, userID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.data[userID]
	for i, entry := range items {
		if entry.ID == id {
			r.data[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
