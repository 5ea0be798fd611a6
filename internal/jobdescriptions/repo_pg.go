package jobdescriptions

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, jd JobDescription) error {
	const query = `
INSERT INTO job_descriptions (id, user_id, title, company_name, description, source_url, is_saved, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		jd.ID,
		jd.UserID,
		nullableString(jd.Title),
		nullableString(jd.CompanyName),
		jd.Description,
		nullableString(jd.SourceURL),
		jd.IsSaved,
		jd.CreatedAt,
	)
	return err
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]JobDescription, error) {
	const query = `
SELECT id, user_id, title, company_name, description, source_url, is_saved, created_at, updated_at
FROM job_descriptions
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []JobDescription
	for rows.Next() {
		jd, err := scanJobDescription(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, jd)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (JobDescription, error) {
	const query = `
SELECT id, user_id, title, company_name, description, source_url, is_saved, created_at, updated_at
FROM job_descriptions
WHERE id = $1 AND user_id = $2
LIMIT 1`
	jd, err := scanJobDescription(r.DB.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return JobDescription{}, ErrNotFound
		}
		return JobDescription{}, err
	}
	return jd, nil
}

func (r *PGRepo) Delete(ctx context.Context, userID, id string) (JobDescription, error) {
	const query = `
DELETE FROM job_descriptions
WHERE id = $1 AND user_id = $2
RETURNING id, user_id, title, company_name, description, source_url, is_saved, created_at, updated_at`
	jd, err := scanJobDescription(r.DB.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return JobDescription{}, ErrNotFound
		}
		return JobDescription{}, err
	}
	return jd, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJobDescription(row rowScanner) (JobDescription, error) {
	var jd JobDescription
	var title sql.NullString
	var companyName sql.NullString
	var sourceURL sql.NullString
	err := row.Scan(
		&jd.ID,
		&jd.UserID,
		&title,
		&companyName,
		&jd.Description,
		&sourceURL,
		&jd.IsSaved,
		&jd.CreatedAt,
		&jd.UpdatedAt,
	)
	if err != nil {
		return JobDescription{}, err
	}
	if title.Valid {
		jd.Title = title.String
	}
	if companyName.Valid {
		jd.CompanyName = companyName.String
	}
	if sourceURL.Valid {
		jd.SourceURL = sourceURL.String
	}
	return jd, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
