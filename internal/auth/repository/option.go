package repository

import "time"

// UpsertCredentialOptions holds parameters for inserting or replacing a credential.
type UpsertCredentialOptions struct {
	UserID       string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}
