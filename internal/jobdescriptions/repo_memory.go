package jobdescriptions

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo for dev and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]JobDescription // userId -> job descriptions
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]JobDescription),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, jd JobDescription) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[jd.UserID] = append(r.data[jd.UserID], jd)
	return nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]JobDescription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]JobDescription, len(r.data[userID]))
	copy(out, r.data[userID])
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID, id string) (JobDescription, error) {
	if err := ctx.Err(); err != nil {
		return JobDescription{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, jd := range r.data[userID] {
		if jd.ID == id {
			return jd, nil
		}
	}
	return JobDescription{}, ErrNotFound
}

func (r *MemoryRepo) Delete(ctx context.Context, userID, id string) (JobDescription, error) {
	if err := ctx.Err(); err != nil {
		return JobDescription{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.data[userID]
	for i, jd := range items {
		if jd.ID == id {
			r.data[userID] = append(items[:i], items[i+1:]...)
			return jd, nil
		}
	}
	return JobDescription{}, ErrNotFound
}
