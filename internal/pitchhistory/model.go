package pitchhistory

import "time"

// Generation methods recorded with each history entry.
const (
	MethodAI       = "ai"
	MethodTemplate = "template"
	MethodManual   = "manual"
)

// Entry is an immutable snapshot of one pitch generation. Unlike the pitch
// itself it is never edited, so it preserves the exact inputs and output of
// the generation even after the pitch is updated or deleted.
type Entry struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user_id"`
	PitchID             string    `json:"pitch_id,omitempty"`
	JobTitle            string    `json:"job_title,omitempty"`
	CompanyName         string    `json:"company_name,omitempty"`
	JobDescription      string    `json:"job_description"`
	UserDetailsSnapshot string    `json:"user_details_snapshot,omitempty"`
	GeneratedPitch      string    `json:"generated_pitch"`
	GenerationMethod    string    `json:"generation_method"`
	CreatedAt           time.Time `json:"created_at"`
}

// DetailedEntry joins an Entry with the owning profile and the live pitch
// status, mirroring the pitch_history_details view.
type DetailedEntry struct {
	Entry
	FullName    string `json:"full_name,omitempty"`
	Email       string `json:"email,omitempty"`
	PitchStatus string `json:"pitch_status,omitempty"`
}
