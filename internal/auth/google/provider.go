package google

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"

	"serava-assistant/internal/auth"
)

// Provider implements auth.OAuthProvider over Google's OAuth2 endpoints.
type Provider struct {
	config *oauth2.Config
}

// Config holds the OAuth application settings.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// New creates a Google OAuth provider with the calendar scope.
func New(cfg Config) (*Provider, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("google oauth: client id and secret are required")
	}
	return &Provider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{calendar.CalendarScope},
			Endpoint:     googleoauth.Endpoint,
		},
	}, nil
}

// AuthCodeURL returns the consent page URL. Offline access with forced consent
// so Google always returns a refresh token.
func (p *Provider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange trades an authorization code for a token pair.
func (p *Provider) Exchange(ctx context.Context, code string) (auth.OAuthTokens, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return auth.OAuthTokens{}, fmt.Errorf("google oauth: code exchange failed: %w", err)
	}
	return auth.OAuthTokens{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}, nil
}

// Refresh mints a new access token from a stored refresh token.
func (p *Provider) Refresh(ctx context.Context, refreshToken string) (auth.OAuthTokens, error) {
	ts := p.config.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	token, err := ts.Token()
	if err != nil {
		return auth.OAuthTokens{}, fmt.Errorf("google oauth: refresh failed: %w", err)
	}
	return auth.OAuthTokens{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}, nil
}
