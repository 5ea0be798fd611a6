package pitches

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, pitch Pitch) error {
	const query = `
INSERT INTO pitches (id, user_id, job_description_id, job_title, company_name, raw_job_description, generated_pitch, pitch_status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		pitch.ID,
		pitch.UserID,
		nullableString(pitch.JobDescriptionID),
		nullableString(pitch.JobTitle),
		nullableString(pitch.CompanyName),
		pitch.RawJobDescription,
		pitch.GeneratedPitch,
		pitch.PitchStatus,
		pitch.CreatedAt,
	)
	return err
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Pitch, error) {
	const query = `
SELECT id, user_id, job_description_id, job_title, company_name, raw_job_description, generated_pitch, pitch_status, created_at, updated_at
FROM pitches
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Pitch
	for rows.Next() {
		pitch, err := scanPitch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, pitch)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (Pitch, error) {
	const query = `
SELECT id, user_id, job_description_id, job_title, company_name, raw_job_description, generated_pitch, pitch_status, created_at, updated_at
FROM pitches
WHERE id = $1 AND user_id = $2
LIMIT 1`
	pitch, err := scanPitch(r.DB.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Pitch{}, ErrNotFound
		}
		return Pitch{}, err
	}
	return pitch, nil
}

func (r *PGRepo) Update(ctx context.Context, userID, id string, update Update) (Pitch, error) {
	const query = `
UPDATE pitches
SET pitch_status = COALESCE($3, pitch_status),
    generated_pitch = COALESCE($4, generated_pitch),
    updated_at = $5
WHERE id = $1 AND user_id = $2
RETURNING id, user_id, job_description_id, job_title, company_name, raw_job_description, generated_pitch, pitch_status, created_at, updated_at`
	pitch, err := scanPitch(r.DB.QueryRowContext(ctx, query,
		id,
		userID,
		update.PitchStatus,
		update.GeneratedPitch,
		time.Now().UTC(),
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Pitch{}, ErrNotFound
		}
		return Pitch{}, err
	}
	return pitch, nil
}

func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM pitches WHERE id = $1 AND user_id = $2`
	res, err := r.DB.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPitch(row rowScanner) (Pitch, error) {
	var pitch Pitch
	var jobDescriptionID, jobTitle, companyName sql.NullString
	err := row.Scan(
		&pitch.ID,
		&pitch.UserID,
		&jobDescriptionID,
		&jobTitle,
		&companyName,
		&pitch.RawJobDescription,
		&pitch.GeneratedPitch,
		&pitch.PitchStatus,
		&pitch.CreatedAt,
		&pitch.UpdatedAt,
	)
	if err != nil {
		return Pitch{}, err
	}
	pitch.JobDescriptionID = jobDescriptionID.String
	pitch.JobTitle = jobTitle.String
	pitch.CompanyName = companyName.String
	return pitch, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
