package models

import "time"

// Session is the identity handed down by the authentication provider. It is
// built once per request by the auth middleware and threaded through calls.
type Session struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	AccessToken string    `json:"-"`
	ExpiresAt   time.Time `json:"expires_at"`
	Profile     *User     `json:"profile,omitempty"`
}
