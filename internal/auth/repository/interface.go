package repository

import (
	"context"

	"serava-assistant/internal/model"
)

// CredentialRepository defines all data access methods for stored credentials.
// Upserts must be atomic per user (last-writer-wins) and must not serialize
// writes for unrelated users.
type CredentialRepository interface {
	// UpsertCredential inserts or replaces the credential for opt.UserID.
	UpsertCredential(ctx context.Context, opt UpsertCredentialOptions) (model.Credential, error)

	// GetCredential returns the credential for the user.
	// Returns a zero-value Credential (UserID == "") when not found, without error.
	GetCredential(ctx context.Context, userID string) (model.Credential, error)

	// DeleteCredential removes the credential for the user.
	DeleteCredential(ctx context.Context, userID string) error
}
