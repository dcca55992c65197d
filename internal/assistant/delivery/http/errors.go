package http

import (
	"errors"

	"serava-assistant/internal/assistant"
	"serava-assistant/internal/auth"
	pkgErrors "serava-assistant/pkg/errors"
)

var errInvalidRequest = pkgErrors.NewHTTPError(400, "invalid request body")

// mapError translates domain errors into HTTP errors from pkg/errors.
// A resolution miss keeps its actionable message; everything upstream
// collapses to a generic 500.
func (h *handler) mapError(err error) error {
	var notFound *assistant.EventNotFoundError

	switch {
	case errors.Is(err, assistant.ErrEmptyPrompt):
		return pkgErrors.NewHTTPError(400, "prompt is required")
	case errors.Is(err, auth.ErrNoCredential), errors.Is(err, auth.ErrAuthenticationFailed):
		return pkgErrors.NewHTTPError(401, "authentication failed")
	case errors.As(err, &notFound):
		return pkgErrors.NewHTTPError(404, notFound.Error())
	case errors.Is(err, assistant.ErrEventNotFound):
		return pkgErrors.NewHTTPError(404, "event not found")
	case errors.Is(err, assistant.ErrInvalidRequestData):
		return pkgErrors.NewHTTPError(400, "invalid request data")
	case errors.Is(err, assistant.ErrUpstreamAPIFailure):
		return pkgErrors.NewHTTPError(500, "upstream service failure")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
