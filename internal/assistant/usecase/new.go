package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"serava-assistant/internal/assistant"
	"serava-assistant/internal/auth"
	"serava-assistant/pkg/datemath"
	"serava-assistant/pkg/gcalendar"
	pkgLog "serava-assistant/pkg/log"
	"serava-assistant/pkg/llmprovider"
)

const (
	// DefaultSnapshotTTL bounds how long a fetched calendar snapshot may be
	// reused before the next prompt refetches it.
	DefaultSnapshotTTL = 30 * time.Second

	snapshotCacheSize = 512

	defaultEventDuration = time.Hour
	defaultEventTime     = "09:00"
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      *llmprovider.Manager
	calendar gcalendar.ICalendar
	authUC   auth.UseCase
	dateMath *datemath.Parser

	snapshots *expirable.LRU[string, []gcalendar.Event]

	now func() time.Time
}

var _ assistant.UseCase = &implUseCase{}

func New(l pkgLog.Logger, llm *llmprovider.Manager, calendar gcalendar.ICalendar, authUC auth.UseCase, dateMath *datemath.Parser, snapshotTTL time.Duration) assistant.UseCase {
	uc := &implUseCase{
		l:        l,
		llm:      llm,
		calendar: calendar,
		authUC:   authUC,
		dateMath: dateMath,
		now:      time.Now,
	}
	if snapshotTTL > 0 {
		uc.snapshots = expirable.NewLRU[string, []gcalendar.Event](snapshotCacheSize, nil, snapshotTTL)
	}
	return uc
}
