package profiles

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "profile not found" }

type Repo interface {
	Upsert(ctx context.Context, profile Profile) error
	GetByID(ctx context.Context, userID string) (Profile, error)
	GetByEmail(ctx context.Context, email string) (Profile, error)
}
