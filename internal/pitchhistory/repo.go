package pitchhistory

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("history entry not found")

type Repo interface {
	Create(ctx context.Context, entry Entry) error
	ListByUser(ctx context.Context, userID string) ([]Entry, error)
	ListDetailedByUser(ctx context.Context, userID string) ([]DetailedEntry, error)
	// Delete removes the entry; ErrNotFound when absent or owned by
	// another user.
	Delete(ctx context.Context, userID, id string) error
}
