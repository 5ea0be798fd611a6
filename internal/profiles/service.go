package profiles

import (
	"context"
	"errors"
	"strings"
	"time"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// GetOrCreate returns the user's profile, creating an empty row from the
// session identity on first access.
func (s *Service) GetOrCreate(ctx context.Context, userID, email, fullName string) (Profile, error) {
	if s == nil || s.Repo == nil {
		return Profile{}, errors.New("profiles service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return Profile{}, errors.New("user id is required")
	}

	profile, err := s.Repo.GetByID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Profile{}, err
	}

	now := time.Now().UTC()
	profile = Profile{
		ID:        userID,
		Email:     email,
		FullName:  fullName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Upsert(ctx, profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// Update applies a partial edit to the user's profile, lazily creating the
// row when absent.
func (s *Service) Update(ctx context.Context, userID, email string, update Update) (Profile, error) {
	profile, err := s.GetOrCreate(ctx, userID, email, "")
	if err != nil {
		return Profile{}, err
	}

	if update.FullName != nil {
		profile.FullName = strings.TrimSpace(*update.FullName)
	}
	if update.BackgroundDetails != nil {
		profile.BackgroundDetails = strings.TrimSpace(*update.BackgroundDetails)
	}
	if update.Skills != nil {
		profile.Skills = strings.TrimSpace(*update.Skills)
	}
	if update.Experience != nil {
		profile.Experience = strings.TrimSpace(*update.Experience)
	}
	if update.Education != nil {
		profile.Education = strings.TrimSpace(*update.Education)
	}
	profile.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Upsert(ctx, profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// GetByID returns the profile for a user, without lazy creation. Callers that
// can tolerate absence (prompt building) check for ErrNotFound.
func (s *Service) GetByID(ctx context.Context, userID string) (Profile, error) {
	if s == nil || s.Repo == nil {
		return Profile{}, errors.New("profiles service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return Profile{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}

// FindByEmail locates an existing profile by email, used by the auth gateway
// to keep user ids stable across sign-ins.
func (s *Service) FindByEmail(ctx context.Context, email string) (Profile, error) {
	if s == nil || s.Repo == nil {
		return Profile{}, errors.New("profiles service not configured")
	}
	if strings.TrimSpace(email) == "" {
		return Profile{}, errors.New("email is required")
	}
	return s.Repo.GetByEmail(ctx, email)
}
