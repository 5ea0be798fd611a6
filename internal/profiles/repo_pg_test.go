package profiles

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsertNullsEmptyFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	profile := Profile{
		ID:     "user-1",
		Email:  "ada@example.com",
		Skills: "Go, SQL",
	}

	mock.ExpectExec("INSERT INTO user_profiles").
		WithArgs(
			profile.ID,
			profile.Email,
			nil, // full_name
			nil, // background_details
			profile.Skills,
			nil, // experience
			nil, // education
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Upsert(context.Background(), profile); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, email").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "full_name", "background_details", "skills", "experience", "education", "created_at", "updated_at",
		}))

	if _, err := repo.GetByID(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
