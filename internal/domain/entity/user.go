// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User represents a local account created from a Google sign-in. The
// provider's subject id (GoogleID) is the stable external key; profile
// fields are refreshed on every successful callback.
type User struct {
	ID        int64      `json:"id"`
	GoogleID  string     `json:"google_id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Picture   string     `json:"picture"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
