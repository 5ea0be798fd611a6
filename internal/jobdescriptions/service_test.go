package jobdescriptions

import (
	"context"
	"errors"
	"testing"
)

func TestCreateRequiresDescription(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	_, err := svc.Create(context.Background(), "user-1", CreateInput{Description: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateBackfillsTitleAndCompany(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	jd, err := svc.Create(context.Background(), "user-1", CreateInput{
		Description: "Position: Senior Software Engineer\nCompany: Acme Corp\nBuild reliable backend services.",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if jd.Title != "Senior Software Engineer" {
		t.Errorf("title = %q, want %q", jd.Title, "Senior Software Engineer")
	}
	if jd.CompanyName != "Acme Corp" {
		t.Errorf("company_name = %q, want %q", jd.CompanyName, "Acme Corp")
	}
	if jd.ID == "" {
		t.Error("expected generated id")
	}
	if !jd.IsSaved {
		t.Error("expected is_saved to be true")
	}
}

func TestCreateKeepsExplicitFields(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	jd, err := svc.Create(context.Background(), "user-1", CreateInput{
		Title:       "Staff Engineer",
		CompanyName: "Globex Inc",
		Description: "Company: Acme Corp\nSome posting text.",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if jd.Title != "Staff Engineer" {
		t.Errorf("title = %q, want explicit value", jd.Title)
	}
	if jd.CompanyName != "Globex Inc" {
		t.Errorf("company_name = %q, want explicit value", jd.CompanyName)
	}
}

func TestDeleteScopedToOwner(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	jd, err := svc.Create(context.Background(), "user-1", CreateInput{Description: "A posting."})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Delete(context.Background(), "user-2", jd.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other user, got %v", err)
	}

	deleted, err := svc.Delete(context.Background(), "user-1", jd.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.ID != jd.ID {
		t.Errorf("deleted id = %q, want %q", deleted.ID, jd.ID)
	}

	items, err := svc.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty list after delete, got %d items", len(items))
	}
}
