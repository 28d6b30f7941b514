package timesheet

import (
	"context"

	"github.com/pontolago/ponto-api/internal/audit"
	"github.com/pontolago/ponto-api/internal/clock"
	domain "github.com/pontolago/ponto-api/internal/domain/timesheet"
	"github.com/pontolago/ponto-api/internal/models"
)

type RegisterDayOffInput struct {
	Email string
}

// RegisterDayOff marks today as a day off for the employee. Several
// day-off records on the same date are allowed; nothing deduplicates
// them.
type RegisterDayOff struct {
	store domain.Store
	audit *audit.Dispatcher
}

func NewRegisterDayOff(
	store domain.Store,
	audit *audit.Dispatcher,
) *RegisterDayOff {
	return &RegisterDayOff{
		store: store,
		audit: audit,
	}
}

func (uc *RegisterDayOff) Execute(
	ctx context.Context,
	in RegisterDayOffInput,
) (*models.Entry, error) {

	now := clock.Now()
	date, weekday := clock.DateAndWeekday(now)

	entry := domain.NewDayOff(domain.NewEntryID(now), in.Email, date, weekday)

	snap, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	snap.Entries = append(snap.Entries, *entry)

	if err := uc.store.Save(ctx, snap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorEmail: in.Email,
		Action:     "day_off_created",
		Entity:     "entry",
		EntityID:   entry.ID,
	})

	return entry, nil
}
