package auth

import "context"

// UseCase owns the OAuth credential lifecycle for every user.
type UseCase interface {
	// AuthCodeURL returns the Google consent page URL. The state value round-trips
	// the user id through the OAuth redirect.
	AuthCodeURL(state string) string

	// HandleCallback exchanges an authorization code and upserts the user's credential.
	HandleCallback(ctx context.Context, userID, code string) error

	// GetValidAccessToken returns a usable access token for the user, refreshing
	// the credential first when it has expired. Exactly one refresh call is made
	// per expired lookup; a failed refresh is not retried here.
	GetValidAccessToken(ctx context.Context, userID string) (string, error)

	// StoreCredential upserts the user's token pair.
	StoreCredential(ctx context.Context, userID string, tokens OAuthTokens) error

	// HasCredential reports whether a credential exists for the user.
	HasCredential(ctx context.Context, userID string) (bool, error)

	// DeleteCredential removes the user's credential.
	DeleteCredential(ctx context.Context, userID string) error
}

// OAuthProvider abstracts the Google OAuth endpoints the use case depends on.
type OAuthProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (OAuthTokens, error)
	Refresh(ctx context.Context, refreshToken string) (OAuthTokens, error)
}
