package timesheet

import (
	"context"
	"time"

	"github.com/pontolago/ponto-api/internal/audit"
	"github.com/pontolago/ponto-api/internal/clock"
	domain "github.com/pontolago/ponto-api/internal/domain/timesheet"
	"github.com/pontolago/ponto-api/internal/models"
)

type AddManualEntryInput struct {
	ActorEmail string

	Email string
	Date  string
	Times domain.ManualTimes
}

// AddManualEntry is the admin path: only the date is mandatory, any
// subset of the punch fields is accepted as typed, and the entry is
// tagged Manual/Admin.
type AddManualEntry struct {
	store domain.Store
	audit *audit.Dispatcher
}

func NewAddManualEntry(
	store domain.Store,
	audit *audit.Dispatcher,
) *AddManualEntry {
	return &AddManualEntry{
		store: store,
		audit: audit,
	}
}

func (uc *AddManualEntry) Execute(
	ctx context.Context,
	in AddManualEntryInput,
) (*models.Entry, error) {

	// Weekday rendered once from the given date; entries created
	// before this field existed simply have it blank.
	var weekday string
	if d, err := time.ParseInLocation("2006-01-02", in.Date, clock.Location()); err == nil {
		_, weekday = clock.DateAndWeekday(d)
	}

	entry, err := domain.NewManualEntry(
		domain.NewEntryID(clock.Now()),
		in.Email,
		in.Date,
		weekday,
		in.Times,
	)
	if err != nil {
		return nil, err
	}

	snap, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	snap.Entries = append(snap.Entries, *entry)

	if err := uc.store.Save(ctx, snap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorEmail: in.ActorEmail,
		Action:     "manual_entry_created",
		Entity:     "entry",
		EntityID:   entry.ID,
		Metadata:   map[string]any{"employee": in.Email, "date": in.Date},
	})

	return entry, nil
}
