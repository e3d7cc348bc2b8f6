package model

import (
	"time"
)

// NotProvidedPlaceholder is rendered for optional profile fields the backend
// left empty.
const NotProvidedPlaceholder = "Not provided"

// User is a client-side projection of a backend user profile. Instances are
// never persisted locally; they live only until the next fetch replaces them.
//
// The list endpoint returns a lightweight shape (no timestamps, no embedded
// files); the detail endpoint fills in the rest. Both decode into this struct.
type User struct {
	ID              int64       `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone,omitempty"`
	Bio             string      `json:"bio,omitempty"`
	AudioFilesCount int         `json:"audio_files_count"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	AudioFiles      []AudioFile `json:"audio_files,omitempty"`
}

// DisplayPhone returns the phone number or a placeholder when not set.
func (u *User) DisplayPhone() string {
	if u.Phone == "" {
		return NotProvidedPlaceholder
	}
	return u.Phone
}

// DisplayBio returns the bio or a placeholder when not set.
func (u *User) DisplayBio() string {
	if u.Bio == "" {
		return NotProvidedPlaceholder
	}
	return u.Bio
}

// DisplayCreatedAt returns the creation timestamp formatted for display, or an
// empty string when the backend did not send one.
func (u *User) DisplayCreatedAt() string {
	if u.CreatedAt.IsZero() {
		return ""
	}
	return FormatTimestamp(u.CreatedAt)
}
