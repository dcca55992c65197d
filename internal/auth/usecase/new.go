package usecase

import (
	"time"

	"serava-assistant/internal/auth"
	"serava-assistant/internal/auth/repository"
	pkgLog "serava-assistant/pkg/log"
)

// DefaultRenewalWindow is how long a freshly minted access token is trusted.
// The window is fixed and does not track the provider-declared expiry.
const DefaultRenewalWindow = time.Hour

type implUseCase struct {
	l             pkgLog.Logger
	repo          repository.CredentialRepository
	oauth         auth.OAuthProvider
	location      *time.Location
	renewalWindow time.Duration
	now           func() time.Time
}

// New creates a new auth UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.CredentialRepository,
	oauth auth.OAuthProvider,
	location *time.Location,
	renewalWindow time.Duration,
) *implUseCase {
	if renewalWindow <= 0 {
		renewalWindow = DefaultRenewalWindow
	}
	if location == nil {
		location = time.UTC
	}
	return &implUseCase{
		l:             l,
		repo:          repo,
		oauth:         oauth,
		location:      location,
		renewalWindow: renewalWindow,
		now:           time.Now,
	}
}
