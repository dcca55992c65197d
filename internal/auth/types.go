package auth

// OAuthTokens is the token pair returned by an OAuth code exchange or refresh.
type OAuthTokens struct {
	AccessToken  string
	RefreshToken string
}
