package http

import (
	"errors"

	"serava-assistant/internal/auth"
	"serava-assistant/internal/calendar"
	pkgErrors "serava-assistant/pkg/errors"
)

var errInvalidRequest = pkgErrors.NewHTTPError(400, "invalid request body")

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrNoCredential), errors.Is(err, auth.ErrAuthenticationFailed):
		return pkgErrors.NewHTTPError(401, "authentication failed")
	case errors.Is(err, calendar.ErrInvalidInput):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, calendar.ErrCalendarFailure):
		return pkgErrors.NewHTTPError(500, "calendar service failure")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
