package usecase

import (
	"context"
	"fmt"

	"serava-assistant/internal/auth"
	"serava-assistant/internal/auth/repository"
)

// AuthCodeURL returns the Google consent URL with the user id as state.
func (uc *implUseCase) AuthCodeURL(state string) string {
	return uc.oauth.AuthCodeURL(state)
}

// HandleCallback exchanges the authorization code and stores the credential.
func (uc *implUseCase) HandleCallback(ctx context.Context, userID, code string) error {
	tokens, err := uc.oauth.Exchange(ctx, code)
	if err != nil {
		uc.l.Errorf(ctx, "auth.HandleCallback: exchange failed for user %s: %v", userID, err)
		return fmt.Errorf("%w: %v", auth.ErrAuthenticationFailed, err)
	}
	return uc.StoreCredential(ctx, userID, tokens)
}

// StoreCredential upserts the user's token pair with a fresh expiry.
func (uc *implUseCase) StoreCredential(ctx context.Context, userID string, tokens auth.OAuthTokens) error {
	now := uc.now().In(uc.location)
	_, err := uc.repo.UpsertCredential(ctx, repository.UpsertCredentialOptions{
		UserID:       userID,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    now.Add(uc.renewalWindow),
	})
	if err != nil {
		return err
	}

	uc.l.Infof(ctx, "auth.StoreCredential: stored tokens for user %s", userID)
	return nil
}

// GetValidAccessToken returns the stored token, refreshing it first when expired.
func (uc *implUseCase) GetValidAccessToken(ctx context.Context, userID string) (string, error) {
	cred, err := uc.repo.GetCredential(ctx, userID)
	if err != nil {
		return "", err
	}
	if cred.UserID == "" {
		return "", auth.ErrNoCredential
	}

	now := uc.now().In(uc.location)
	if cred.Valid(now) {
		return cred.AccessToken, nil
	}

	uc.l.Infof(ctx, "auth.GetValidAccessToken: token expired for user %s, refreshing", userID)

	tokens, err := uc.oauth.Refresh(ctx, cred.RefreshToken)
	if err != nil {
		// A failed refresh is terminal for the request; no retry at this layer.
		return "", fmt.Errorf("%w: token refresh: %v", auth.ErrAuthenticationFailed, err)
	}

	// Google often omits the refresh token on refresh responses; keep the stored one.
	refreshToken := tokens.RefreshToken
	if refreshToken == "" {
		refreshToken = cred.RefreshToken
	}

	updated, err := uc.repo.UpsertCredential(ctx, repository.UpsertCredentialOptions{
		UserID:       userID,
		AccessToken:  tokens.AccessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    now.Add(uc.renewalWindow),
	})
	if err != nil {
		return "", err
	}

	return updated.AccessToken, nil
}

// HasCredential reports whether a credential exists for the user.
func (uc *implUseCase) HasCredential(ctx context.Context, userID string) (bool, error) {
	cred, err := uc.repo.GetCredential(ctx, userID)
	if err != nil {
		return false, err
	}
	return cred.UserID != "", nil
}

// DeleteCredential removes the user's credential.
func (uc *implUseCase) DeleteCredential(ctx context.Context, userID string) error {
	return uc.repo.DeleteCredential(ctx, userID)
}
