package pitches

import "time"

// Pitch statuses. Generated is the initial state; the user can later mark a
// pitch favorited or used.
const (
	StatusGenerated = "generated"
	StatusFavorited = "favorited"
	StatusUsed      = "used"
)

// ValidStatus reports whether s is one of the allowed pitch statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusGenerated, StatusFavorited, StatusUsed:
		return true
	}
	return false
}

// Pitch is a generated cover letter, exclusively owned by its user.
type Pitch struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	JobDescriptionID  string    `json:"job_description_id,omitempty"`
	JobTitle          string    `json:"job_title,omitempty"`
	CompanyName       string    `json:"company_name,omitempty"`
	RawJobDescription string    `json:"raw_job_description"`
	GeneratedPitch    string    `json:"generated_pitch"`
	PitchStatus       string    `json:"pitch_status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
