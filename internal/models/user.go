package models

import "time"

// User is the account profile owned by the backend. The client holds a
// transient copy, replaced wholesale on login, register and profile
// fetches.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
