package model

import "time"

// Credential holds one user's OAuth tokens for the Calendar API.
// There is exactly one Credential per user id; refreshes mutate it in place.
type Credential struct {
	UserID       string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Valid reports whether the access token is still usable at the given instant.
func (c Credential) Valid(now time.Time) bool {
	return now.Before(c.ExpiresAt)
}
