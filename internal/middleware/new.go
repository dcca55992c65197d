package middleware

import (
	"serava-assistant/internal/auth"
	pkgLog "serava-assistant/pkg/log"
)

type Middleware struct {
	l       pkgLog.Logger
	authUC  auth.UseCase
	limiter *userLimiter
}

// New creates the shared HTTP middleware set.
func New(l pkgLog.Logger, authUC auth.UseCase, rps float64, burst int) *Middleware {
	return &Middleware{
		l:       l,
		authUC:  authUC,
		limiter: newUserLimiter(rps, burst),
	}
}
