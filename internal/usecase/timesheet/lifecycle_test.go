package timesheet

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontolago/ponto-api/internal/audit"
	"github.com/pontolago/ponto-api/internal/clock"
	domain "github.com/pontolago/ponto-api/internal/domain/timesheet"
	"github.com/pontolago/ponto-api/internal/httperr"
	"github.com/pontolago/ponto-api/internal/infra/repository"
	"github.com/pontolago/ponto-api/internal/models"
)

type fixedRand struct{ v int }

func (f fixedRand) Intn(n int) int { return f.v % n }

func newTestDeps(t *testing.T) (*repository.MemoryStore, *audit.Dispatcher) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := repository.NewMemoryStore()
	dispatcher := audit.NewDispatcher(audit.NewSlogLogger(logger), logger)
	return store, dispatcher
}

func loadEntries(t *testing.T, store domain.Store) []models.Entry {
	t.Helper()

	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	return snap.Entries
}

// --------------------------------------------------
// Self-registration
// --------------------------------------------------

func TestRegisterEntry(t *testing.T) {
	store, dispatcher := newTestDeps(t)
	uc := NewRegisterEntry(store, clock.NewShiftGenerator(fixedRand{v: 2}), dispatcher)

	entry, err := uc.Execute(context.Background(), RegisterEntryInput{
		Email:      "ana@x.com",
		Role:       "Atendente",
		Location:   "Lago",
		BreakStart: "18:30",
	})
	require.NoError(t, err)

	wantDate, wantWeekday := clock.Today()

	assert.Equal(t, models.KindNormal, entry.Kind)
	assert.Equal(t, "ana@x.com", entry.EmployeeEmail)
	assert.Equal(t, wantDate, entry.Date)
	assert.Equal(t, wantWeekday, entry.Weekday)
	assert.Equal(t, "15:02", *entry.ClockIn)
	assert.Equal(t, "23:02", *entry.ClockOut)
	assert.Equal(t, "18:30", *entry.BreakStart)
	assert.Equal(t, "19:10", *entry.BreakEnd)
	assert.Equal(t, domain.DefaultBreakMinutes, *entry.BreakMinutes)

	persisted := loadEntries(t, store)
	require.Len(t, persisted, 1)
	assert.Equal(t, entry.ID, persisted[0].ID)
}

func TestRegisterEntryMissingFieldsDoesNotPersist(t *testing.T) {
	store, dispatcher := newTestDeps(t)
	uc := NewRegisterEntry(store, clock.NewShiftGenerator(fixedRand{v: 0}), dispatcher)

	_, err := uc.Execute(context.Background(), RegisterEntryInput{
		Email:    "ana@x.com",
		Role:     "Atendente",
		Location: "Lago",
		// no break start
	})

	assert.True(t, httperr.IsBusiness(err, "missing_required_fields"))
	assert.Empty(t, loadEntries(t, store))
}

// --------------------------------------------------
// Day off
// --------------------------------------------------

func TestRegisterDayOff(t *testing.T) {
	store, dispatcher := newTestDeps(t)
	uc := NewRegisterDayOff(store, dispatcher)

	entry, err := uc.Execute(context.Background(), RegisterDayOffInput{Email: "ana@x.com"})
	require.NoError(t, err)

	assert.Equal(t, models.KindDayOff, entry.Kind)
	assert.Equal(t, models.DayOffRole, entry.Role)
	assert.Nil(t, entry.ClockIn)
	assert.Nil(t, entry.BreakStart)
	assert.Nil(t, entry.BreakEnd)
	assert.Nil(t, entry.ClockOut)
}

func TestRegisterDayOffAllowsDuplicatesOnSameDate(t *testing.T) {
	store, dispatcher := newTestDeps(t)
	uc := NewRegisterDayOff(store, dispatcher)

	_, err := uc.Execute(context.Background(), RegisterDayOffInput{Email: "ana@x.com"})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), RegisterDayOffInput{Email: "ana@x.com"})
	require.NoError(t, err)

	assert.Len(t, loadEntries(t, store), 2)
}

// --------------------------------------------------
// Manual entry
// --------------------------------------------------

func TestAddManualEntryDateOnly(t *testing.T) {
	store, dispatcher := newTestDeps(t)
	uc := NewAddManualEntry(store, dispatcher)

	entry, err := uc.Execute(context.Background(), AddManualEntryInput{
		ActorEmail: "admin@x.com",
		Email:      "bob@x.com",
		Date:       "2025-03-11",
	})
	require.NoError(t, err)

	assert.Equal(t, models.ManualRole, entry.Role)
	assert.Equal(t, models.ManualLocation, entry.Location)
	assert.Equal(t, "terça-feira", entry.Weekday)
	assert.Nil(t, entry.ClockIn)

	assert.Len(t, loadEntries(t, store), 1)
}

func TestAddManualEntryRequiresDate(t *testing.T) {
	store, dispatcher := newTestDeps(t)
	uc := NewAddManualEntry(store, dispatcher)

	_, err := uc.Execute(context.Background(), AddManualEntryInput{
		ActorEmail: "admin@x.com",
		Email:      "bob@x.com",
		Times:      domain.ManualTimes{ClockIn: "09:00"},
	})

	assert.True(t, httperr.IsBusiness(err, "missing_date"))
	assert.Empty(t, loadEntries(t, store))
}

// --------------------------------------------------
// Update
// --------------------------------------------------

func TestUpdateEntryUnknownIDIsSilentNoop(t *testing.T) {
	store, dispatcher := newTestDeps(t)

	add := NewAddManualEntry(store, dispatcher)
	_, err := add.Execute(context.Background(), AddManualEntryInput{
		ActorEmail: "admin@x.com",
		Email:      "bob@x.com",
		Date:       "2025-03-11",
		Times:      domain.ManualTimes{ClockIn: "09:00", ClockOut: "17:00"},
	})
	require.NoError(t, err)

	before := loadEntries(t, store)

	in := "10:00"
	updated, err := NewUpdateEntry(store, dispatcher).Execute(context.Background(), UpdateEntryInput{
		ActorEmail: "admin@x.com",
		ID:         "does-not-exist",
		Fields:     domain.EntryUpdate{ClockIn: &in},
	})

	require.NoError(t, err)
	assert.Nil(t, updated)
	assert.Equal(t, before, loadEntries(t, store))
}

func TestUpdateEntryMergesAndPersists(t *testing.T) {
	store, dispatcher := newTestDeps(t)

	add := NewAddManualEntry(store, dispatcher)
	created, err := add.Execute(context.Background(), AddManualEntryInput{
		ActorEmail: "admin@x.com",
		Email:      "bob@x.com",
		Date:       "2025-03-11",
		Times:      domain.ManualTimes{ClockIn: "09:00"},
	})
	require.NoError(t, err)

	out := "17:30"
	updated, err := NewUpdateEntry(store, dispatcher).Execute(context.Background(), UpdateEntryInput{
		ActorEmail: "admin@x.com",
		ID:         created.ID,
		Fields:     domain.EntryUpdate{ClockOut: &out},
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	persisted := loadEntries(t, store)
	require.Len(t, persisted, 1)
	assert.Equal(t, "17:30", *persisted[0].ClockOut)
	assert.Equal(t, "09:00", *persisted[0].ClockIn)
	assert.Equal(t, created.ID, persisted[0].ID)
	assert.Equal(t, models.KindNormal, persisted[0].Kind)
}

// --------------------------------------------------
// Delete
// --------------------------------------------------

func TestDeleteEntryTwiceIsIdempotent(t *testing.T) {
	store, dispatcher := newTestDeps(t)

	add := NewAddManualEntry(store, dispatcher)
	created, err := add.Execute(context.Background(), AddManualEntryInput{
		ActorEmail: "admin@x.com",
		Email:      "bob@x.com",
		Date:       "2025-03-11",
	})
	require.NoError(t, err)

	del := NewDeleteEntry(store, dispatcher)

	deleted, err := del.Execute(context.Background(), DeleteEntryInput{
		ActorEmail: "admin@x.com",
		ID:         created.ID,
	})
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Empty(t, loadEntries(t, store))

	deleted, err = del.Execute(context.Background(), DeleteEntryInput{
		ActorEmail: "admin@x.com",
		ID:         created.ID,
	})
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Empty(t, loadEntries(t, store))
}

func TestDeleteEntryEnforcesOwner(t *testing.T) {
	store, dispatcher := newTestDeps(t)

	add := NewAddManualEntry(store, dispatcher)
	created, err := add.Execute(context.Background(), AddManualEntryInput{
		ActorEmail: "admin@x.com",
		Email:      "bob@x.com",
		Date:       "2025-03-11",
	})
	require.NoError(t, err)

	_, err = NewDeleteEntry(store, dispatcher).Execute(context.Background(), DeleteEntryInput{
		ActorEmail: "ana@x.com",
		ID:         created.ID,
		OwnerEmail: "ana@x.com",
	})

	assert.True(t, httperr.IsBusiness(err, "entry_not_found"))
	assert.Len(t, loadEntries(t, store), 1)
}

// --------------------------------------------------
// Listing and roster
// --------------------------------------------------

func TestListEmployeeEntriesFiltersByEmail(t *testing.T) {
	store, dispatcher := newTestDeps(t)

	add := NewAddManualEntry(store, dispatcher)
	for _, email := range []string{"ana@x.com", "bob@x.com", "ana@x.com"} {
		_, err := add.Execute(context.Background(), AddManualEntryInput{
			ActorEmail: "admin@x.com",
			Email:      email,
			Date:       "2025-03-11",
		})
		require.NoError(t, err)
	}

	entries, err := NewListEmployeeEntries(store).Execute(context.Background(), "ana@x.com")
	require.NoError(t, err)

	assert.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, "ana@x.com", e.EmployeeEmail)
	}
}

func TestListRosterMergesSavedProfiles(t *testing.T) {
	store, dispatcher := newTestDeps(t)

	add := NewAddManualEntry(store, dispatcher)
	for _, email := range []string{"ana@x.com", "bob@x.com", "ana@x.com"} {
		_, err := add.Execute(context.Background(), AddManualEntryInput{
			ActorEmail: "admin@x.com",
			Email:      email,
			Date:       "2025-03-11",
		})
		require.NoError(t, err)
	}

	name := "Ana Silva"
	err := NewSaveProfile(store, dispatcher).Execute(context.Background(), SaveProfileInput{
		ActorEmail: "admin@x.com",
		Email:      "ana@x.com",
		Override:   models.ProfileOverride{Name: &name},
	})
	require.NoError(t, err)

	result, err := NewListRoster(store).Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Employees, 2)
	assert.Equal(t, "Ana Silva", result.Employees[0].Name)
	assert.Equal(t, "bob", result.Employees[1].Name)
	assert.Len(t, result.Grouped["ana@x.com"], 2)
	assert.Len(t, result.Grouped["bob@x.com"], 1)
}

func TestSaveProfileReplacesWholeRecord(t *testing.T) {
	store, dispatcher := newTestDeps(t)
	save := NewSaveProfile(store, dispatcher)

	name := "Ana Silva"
	cc := "CC-12"
	err := save.Execute(context.Background(), SaveProfileInput{
		ActorEmail: "admin@x.com",
		Email:      "ana@x.com",
		Override:   models.ProfileOverride{Name: &name, CostCenter: &cc},
	})
	require.NoError(t, err)

	// second write carries only the name: the cost center is gone,
	// last write wins on the full record
	err = save.Execute(context.Background(), SaveProfileInput{
		ActorEmail: "admin@x.com",
		Email:      "ana@x.com",
		Override:   models.ProfileOverride{Name: &name},
	})
	require.NoError(t, err)

	snap, err := store.Load(context.Background())
	require.NoError(t, err)

	ov := snap.Profiles["ana@x.com"]
	assert.Equal(t, "Ana Silva", *ov.Name)
	assert.Nil(t, ov.CostCenter)
}
