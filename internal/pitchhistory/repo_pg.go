package pitchhistory

import (
	"context"
	"database/sql"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, entry Entry) error {
	const query = `
INSERT INTO pitch_history (id, user_id, pitch_id, job_title, company_name, job_description, user_details_snapshot, generated_pitch, generation_method, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.DB.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		nullableString(entry.PitchID),
		nullableString(entry.JobTitle),
		nullableString(entry.CompanyName),
		entry.JobDescription,
		nullableString(entry.UserDetailsSnapshot),
		entry.GeneratedPitch,
		entry.GenerationMethod,
		entry.CreatedAt,
	)
	return err
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Entry, error) {
	const query = `
SELECT id, user_id, pitch_id, job_title, company_name, job_description, user_details_snapshot, generated_pitch, generation_method, created_at
FROM pitch_history
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

func (r *PGRepo) ListDetailedByUser(ctx context.Context, userID string) ([]DetailedEntry, error) {
	const query = `
SELECT id, user_id, pitch_id, job_title, company_name, job_description, user_details_snapshot, generated_pitch, generation_method, created_at, full_name, email, pitch_status
FROM pitch_history_details
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DetailedEntry
	for rows.Next() {
		var d DetailedEntry
		var pitchID, jobTitle, companyName, snapshot sql.NullString
		var fullName, email, pitchStatus sql.NullString
		err := rows.Scan(
			&d.ID,
			&d.UserID,
			&pitchID,
			&jobTitle,
			&companyName,
			&d.JobDescription,
			&snapshot,
			&d.GeneratedPitch,
			&d.GenerationMethod,
			&d.CreatedAt,
			&fullName,
			&email,
			&pitchStatus,
		)
		if err != nil {
			return nil, err
		}
		d.PitchID = pitchID.String
		d.JobTitle = jobTitle.String
		d.CompanyName = companyName.String
		d.UserDetailsSnapshot = snapshot.String
		d.FullName = fullName.String
		d.Email = email.String
		d.PitchStatus = pitchStatus.String
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM pitch_history WHERE id = $1 AND user_id = $2`
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

func scanEntry(row rowScanner) (Entry, error) {
	var entry Entry
	var pitchID, jobTitle, companyName, snapshot sql.NullString
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&pitchID,
		&jobTitle,
		&companyName,
		&entry.JobDescription,
		&snapshot,
		&entry.GeneratedPitch,
		&entry.GenerationMethod,
		&entry.CreatedAt,
	)
	if err != nil {
		return Entry{}, err
	}
	entry.PitchID = pitchID.String
	entry.JobTitle = jobTitle.String
	entry.CompanyName = companyName.String
	entry.UserDetailsSnapshot = snapshot.String
	return entry, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
