package usecase

import (
	"time"

	"serava-assistant/internal/auth"
	"serava-assistant/internal/calendar"
	"serava-assistant/pkg/datemath"
	"serava-assistant/pkg/gcalendar"
	pkgLog "serava-assistant/pkg/log"
)

const defaultEventDuration = time.Hour

type implUseCase struct {
	l        pkgLog.Logger
	calendar gcalendar.ICalendar
	authUC   auth.UseCase
	dateMath *datemath.Parser
}

var _ calendar.UseCase = &implUseCase{}

func New(l pkgLog.Logger, cal gcalendar.ICalendar, authUC auth.UseCase, dateMath *datemath.Parser) calendar.UseCase {
	return &implUseCase{
		l:        l,
		calendar: cal,
		authUC:   authUC,
		dateMath: dateMath,
	}
}
