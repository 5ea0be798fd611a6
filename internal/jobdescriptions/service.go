package jobdescriptions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pitchmaker-backend/internal/extract"
)

// Service owns job description business logic on top of a Repo.
type Service struct {
	Repo Repo
}

// CreateInput carries the client-provided fields for a new job description.
type CreateInput struct {
	Title       string
	CompanyName string
	Description string
	SourceURL   string
}

// Create validates the input, backfills missing title and company from the
// posting text, and persists the job description.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (JobDescription, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return JobDescription{}, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	title := strings.TrimSpace(in.Title)
	companyName := strings.TrimSpace(in.CompanyName)
	if title == "" || companyName == "" {
		fields := extract.ParseJobPosting(description)
		if title == "" {
			title = fields.JobTitle
		}
		if companyName == "" {
			companyName = fields.CompanyName
		}
	}

	now := time.Now().UTC()
	jd := JobDescription{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		CompanyName: companyName,
		Description: description,
		SourceURL:   strings.TrimSpace(in.SourceURL),
		IsSaved:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, jd); err != nil {
		return JobDescription{}, fmt.Errorf("create job description: %w", err)
	}
	return jd, nil
}

// List returns the user's saved job descriptions, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]JobDescription, error) {
	items, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list job descriptions: %w", err)
	}
	if items == nil {
		items = []JobDescription{}
	}
	return items, nil
}

// Get fetches a single job description owned by the user.
func (s *Service) Get(ctx context.Context, userID, id string) (JobDescription, error) {
	return s.Repo.GetByID(ctx, userID, id)
}

// Delete removes a job description owned by the user and returns the
// deleted row.
func (s *Service) Delete(ctx context.Context, userID, id string) (JobDescription, error) {
	if strings.TrimSpace(id) == "" {
		return JobDescription{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, userID, id)
}
