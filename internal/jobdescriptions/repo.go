package jobdescriptions

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("job description not found")
	ErrInvalidInput = errors.New("invalid input")
)

type Repo interface {
	Create(ctx context.Context, jd JobDescription) error
	ListByUser(ctx context.Context, userID string) ([]JobDescription, error)
	GetByID(ctx context.Context, userID, id string) (JobDescription, error)
	// Delete removes the row and returns it; ErrNotFound when absent or
	// owned by another user.
	Delete(ctx context.Context, userID, id string) (JobDescription, error)
}
