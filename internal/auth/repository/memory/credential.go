package memory

import (
	"context"
	"sync"
	"time"

	"serava-assistant/internal/auth/repository"
	"serava-assistant/internal/model"
)

// implRepository is an in-memory CredentialRepository for development and tests.
// sync.Map gives per-key atomicity, so concurrent refreshes for one user are
// last-writer-wins and unrelated users never contend.
type implRepository struct {
	creds sync.Map // userID -> model.Credential
}

// New creates a new in-memory CredentialRepository.
func New() repository.CredentialRepository {
	return &implRepository{}
}

// UpsertCredential inserts or replaces the credential for opt.UserID.
func (r *implRepository) UpsertCredential(ctx context.Context, opt repository.UpsertCredentialOptions) (model.Credential, error) {
	now := time.Now()
	cred := model.Credential{
		UserID:       opt.UserID,
		AccessToken:  opt.AccessToken,
		RefreshToken: opt.RefreshToken,
		ExpiresAt:    opt.ExpiresAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if existing, ok := r.creds.Load(opt.UserID); ok {
		cred.CreatedAt = existing.(model.Credential).CreatedAt
	}
	r.creds.Store(opt.UserID, cred)
	return cred, nil
}

// GetCredential returns the stored credential, or a zero value when missing.
func (r *implRepository) GetCredential(ctx context.Context, userID string) (model.Credential, error) {
	if v, ok := r.creds.Load(userID); ok {
		return v.(model.Credential), nil
	}
	return model.Credential{}, nil
}

// DeleteCredential removes the credential for the user.
func (r *implRepository) DeleteCredential(ctx context.Context, userID string) error {
	r.creds.Delete(userID)
	return nil
}
