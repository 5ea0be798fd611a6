package profiles

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, profile Profile) error {
	const query = `
INSERT INTO user_profiles (id, email, full_name, background_details, skills, experience, education, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
ON CONFLICT (id) DO UPDATE SET
  email = EXCLUDED.email,
  full_name = EXCLUDED.full_name,
  background_details = EXCLUDED.background_details,
  skills = EXCLUDED.skills,
  experience = EXCLUDED.experience,
  education = EXCLUDED.education,
  updated_at = now()`
	_, err := r.DB.ExecContext(ctx, query,
		profile.ID,
		profile.Email,
		nullableString(profile.FullName),
		nullableString(profile.BackgroundDetails),
		nullableString(profile.Skills),
		nullableString(profile.Experience),
		nullableString(profile.Education),
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID string) (Profile, error) {
	const query = `
SELECT id, email, full_name, background_details, skills, experience, education, created_at, updated_at
FROM user_profiles
WHERE id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID))
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (Profile, error) {
	const query = `
SELECT id, email, full_name, background_details, skills, experience, education, created_at, updated_at
FROM user_profiles
WHERE email = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

func (r *PGRepo) scanOne(row *sql.Row) (Profile, error) {
	var profile Profile
	var fullName sql.NullString
	var background sql.NullString
	var skills sql.NullString
	var experience sql.NullString
	var education sql.NullString
	var updatedAt sql.NullTime
	err := row.Scan(
		&profile.ID,
		&profile.Email,
		&fullName,
		&background,
		&skills,
		&experience,
		&education,
		&profile.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	if fullName.Valid {
		profile.FullName = fullName.String
	}
	if background.Valid {
		profile.BackgroundDetails = background.String
	}
	if skills.Valid {
		profile.Skills = skills.String
	}
	if experience.Valid {
		profile.Experience = experience.String
	}
	if education.Valid {
		profile.Education = education.String
	}
	if updatedAt.Valid {
		profile.UpdatedAt = updatedAt.Time
	} else {
		profile.UpdatedAt = time.Now().UTC()
	}
	return profile, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
