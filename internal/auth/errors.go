package auth

import "errors"

var (
	ErrNoCredential         = errors.New("no credential stored for user")
	ErrAuthenticationFailed = errors.New("authentication failed")
)
