package domain

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Password  string    `json:"-"` // bcrypt hash
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Settings is the free-form per-user settings bag. It is persisted as a
// single whole record with no schema versioning.
type Settings struct {
	NotificationsEnabled bool   `json:"notifications_enabled"`
	AutoUpdate           bool   `json:"auto_update"`
	LocationEnabled      bool   `json:"location_enabled"`
	DisplayName          string `json:"display_name,omitempty"`
}

// DefaultSettings mirrors the toggles a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		NotificationsEnabled: true,
		AutoUpdate:           true,
		LocationEnabled:      true,
	}
}
