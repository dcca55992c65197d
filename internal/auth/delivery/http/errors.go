package http

import (
	"errors"

	"serava-assistant/internal/auth"
	pkgErrors "serava-assistant/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrNoCredential):
		return pkgErrors.NewHTTPError(401, "no credential stored for user")
	case errors.Is(err, auth.ErrAuthenticationFailed):
		return pkgErrors.NewHTTPError(401, "authentication failed")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
