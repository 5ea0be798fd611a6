package pitchhistory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("DELETE FROM pitch_history").
		WithArgs("missing", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "user-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListDetailedByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "pitch_id", "job_title", "company_name", "job_description",
		"user_details_snapshot", "generated_pitch", "generation_method", "created_at",
		"full_name", "email", "pitch_status",
	}).AddRow(
		"h1", "user-1", "p1", "Engineer", "Acme Corp", "Posting text",
		nil, "Dear Hiring Manager", "ai", time.Now(),
		"Ada Lovelace", "ada@example.com", "generated",
	)
	mock.ExpectQuery("FROM pitch_history_details").
		WithArgs("user-1").
		WillReturnRows(rows)

	entries, err := repo.ListDetailedByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListDetailedByUser: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.FullName != "Ada Lovelace" || entry.PitchStatus != "generated" {
		t.Errorf("unexpected detail fields: %+v", entry)
	}
	if entry.UserDetailsSnapshot != "" {
		t.Errorf("expected empty snapshot for NULL column, got %q", entry.UserDetailsSnapshot)
	}
}
