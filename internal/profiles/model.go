package profiles

import "time"

// Profile is the per-user profile row. The ID is the auth subject id; one
// row per authenticated user, created lazily on first read and never deleted
// by the app.
type Profile struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	FullName          string    `json:"full_name,omitempty"`
	BackgroundDetails string    `json:"background_details,omitempty"`
	Skills            string    `json:"skills,omitempty"`
	Experience        string    `json:"experience,omitempty"`
	Education         string    `json:"education,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Update carries a partial profile edit. Nil pointers leave the field as-is.
type Update struct {
	FullName          *string `json:"full_name"`
	BackgroundDetails *string `json:"background_details"`
	Skills            *string `json:"skills"`
	Experience        *string `json:"experience"`
	Education         *string `json:"education"`
}
