package postgre

import (
	"context"
	"database/sql"

	"serava-assistant/internal/auth/repository"
	"serava-assistant/internal/model"
)

// UpsertCredential inserts or replaces a credential in one atomic statement.
// ON CONFLICT keeps concurrent refreshes last-writer-wins without locking
// rows of unrelated users.
func (r *implRepository) UpsertCredential(ctx context.Context, opt repository.UpsertCredentialOptions) (model.Credential, error) {
	const query = `
		INSERT INTO credentials (user_id, access_token, refresh_token, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			expires_at = EXCLUDED.expires_at,
			updated_at = NOW()
		RETURNING user_id, access_token, refresh_token, expires_at, created_at, updated_at`

	var cred model.Credential
	err := r.db.QueryRowContext(ctx, query, opt.UserID, opt.AccessToken, opt.RefreshToken, opt.ExpiresAt).Scan(
		&cred.UserID, &cred.AccessToken, &cred.RefreshToken, &cred.ExpiresAt, &cred.CreatedAt, &cred.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertCredential"), err)
		return model.Credential{}, repository.ErrFailedToUpsert
	}
	return cred, nil
}

// GetCredential retrieves a credential by user id.
// Returns a zero-value Credential (UserID == "") when not found rather than an error.
func (r *implRepository) GetCredential(ctx context.Context, userID string) (model.Credential, error) {
	const query = `
		SELECT user_id, access_token, refresh_token, expires_at, created_at, updated_at
		FROM credentials WHERE user_id = $1`

	var cred model.Credential
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&cred.UserID, &cred.AccessToken, &cred.RefreshToken, &cred.ExpiresAt, &cred.CreatedAt, &cred.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Credential{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetCredential"), err)
		return model.Credential{}, repository.ErrFailedToGet
	}
	return cred, nil
}

// DeleteCredential removes a credential by user id.
func (r *implRepository) DeleteCredential(ctx context.Context, userID string) error {
	const query = `DELETE FROM credentials WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteCredential"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}
