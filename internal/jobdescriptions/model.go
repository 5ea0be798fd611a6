package jobdescriptions

import "time"

// JobDescription is a saved job posting, exclusively owned by its user.
type JobDescription struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title,omitempty"`
	CompanyName string    `json:"company_name,omitempty"`
	Description string    `json:"description"`
	SourceURL   string    `json:"source_url,omitempty"`
	IsSaved     bool      `json:"is_saved"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
