package timesheet

import (
	"context"

	"github.com/pontolago/ponto-api/internal/audit"
	"github.com/pontolago/ponto-api/internal/clock"
	domain "github.com/pontolago/ponto-api/internal/domain/timesheet"
	"github.com/pontolago/ponto-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RegisterEntryInput struct {
	Email      string
	Role       string
	Location   string
	BreakStart string
}

// ======================================================
// USE CASE
// ======================================================

// RegisterEntry is the employee self-registration flow: today's date
// and weekday come from the clock, the punch times from the shift
// generator, the break end from the fixed break length.
type RegisterEntry struct {
	store domain.Store
	gen   *clock.ShiftGenerator
	audit *audit.Dispatcher
}

func NewRegisterEntry(
	store domain.Store,
	gen *clock.ShiftGenerator,
	audit *audit.Dispatcher,
) *RegisterEntry {
	return &RegisterEntry{
		store: store,
		gen:   gen,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RegisterEntry) Execute(
	ctx context.Context,
	in RegisterEntryInput,
) (*models.Entry, error) {

	now := clock.Now()
	date, weekday := clock.DateAndWeekday(now)
	clockIn, clockOut := uc.gen.Generate()

	entry, err := domain.NewShiftEntry(
		domain.NewEntryID(now),
		in.Email,
		date,
		weekday,
		in.Role,
		in.Location,
		in.BreakStart,
		clockIn,
		clockOut,
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
		ActorEmail: in.Email,
		Action:     "entry_created",
		Entity:     "entry",
		EntityID:   entry.ID,
	})

	return entry, nil
}
