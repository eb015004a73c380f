package estimate

import (
	"context"

	"gitlab-master-sync/pkg/gcalendar"
)

// UseCase aggregates estimate comments into per-issue footers and a milestone due date.
type UseCase interface {
	Run(ctx context.Context, input RunInput) (RunOutput, error)
}

// CalendarPublisher publishes the milestone due date. *gcalendar.Client satisfies it.
type CalendarPublisher interface {
	UpsertAllDayEvent(ctx context.Context, req gcalendar.AllDayEventRequest) (*gcalendar.Event, error)
}
