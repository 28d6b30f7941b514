package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pontolago/ponto-api/internal/httperr"
	"github.com/pontolago/ponto-api/internal/models"
)

func TestNewShiftEntry(t *testing.T) {
	entry, err := NewShiftEntry(
		"100", "ana@x.com", "2025-03-10", "segunda-feira",
		"Atendente", "Lago", "18:30",
		"15:02", "23:02",
	)

	assert.NoError(t, err)
	assert.Equal(t, models.KindNormal, entry.Kind)
	assert.Equal(t, "15:02", *entry.ClockIn)
	assert.Equal(t, "18:30", *entry.BreakStart)
	assert.Equal(t, "19:10", *entry.BreakEnd)
	assert.Equal(t, "23:02", *entry.ClockOut)
	assert.Equal(t, DefaultBreakMinutes, *entry.BreakMinutes)
}

func TestNewShiftEntryRequiresRoleLocationAndBreak(t *testing.T) {
	for _, tc := range []struct{ role, location, breakStart string }{
		{"", "Lago", "18:30"},
		{"Atendente", "", "18:30"},
		{"Atendente", "Lago", ""},
	} {
		_, err := NewShiftEntry("100", "ana@x.com", "2025-03-10", "segunda-feira",
			tc.role, tc.location, tc.breakStart, "15:00", "23:00")
		assert.True(t, httperr.IsBusiness(err, "missing_required_fields"))
	}
}

func TestNewManualEntryDateOnly(t *testing.T) {
	entry, err := NewManualEntry("101", "bob@x.com", "2025-03-11", "terça-feira", ManualTimes{})

	assert.NoError(t, err)
	assert.Equal(t, models.ManualRole, entry.Role)
	assert.Equal(t, models.ManualLocation, entry.Location)
	assert.Equal(t, models.KindNormal, entry.Kind)
	assert.Nil(t, entry.ClockIn)
	assert.Nil(t, entry.BreakStart)
	assert.Nil(t, entry.BreakEnd)
	assert.Nil(t, entry.ClockOut)
}

func TestNewManualEntryRequiresDate(t *testing.T) {
	_, err := NewManualEntry("101", "bob@x.com", "", "", ManualTimes{ClockIn: "09:00"})
	assert.True(t, httperr.IsBusiness(err, "missing_date"))
}

func TestNewDayOff(t *testing.T) {
	entry := NewDayOff("102", "ana@x.com", "2025-03-12", "quarta-feira")

	assert.True(t, entry.IsDayOff())
	assert.Equal(t, models.DayOffRole, entry.Role)
	assert.Empty(t, entry.Location)
	assert.Nil(t, entry.ClockIn)
	assert.Nil(t, entry.BreakStart)
	assert.Nil(t, entry.BreakEnd)
	assert.Nil(t, entry.ClockOut)
}

func TestApplyEntryUpdateUnknownIDLeavesSliceUntouched(t *testing.T) {
	entries := []models.Entry{entryFor("ana@x.com", "1"), entryFor("bob@x.com", "2")}
	before := make([]models.Entry, len(entries))
	copy(before, entries)

	date := "2030-01-01"
	updated := ApplyEntryUpdate(entries, "999", EntryUpdate{Date: &date})

	assert.Nil(t, updated)
	assert.Equal(t, before, entries)
}

func TestApplyEntryUpdateMergesFields(t *testing.T) {
	in := "09:00"
	entries := []models.Entry{{
		ID:            "1",
		EmployeeEmail: "ana@x.com",
		Date:          "2025-03-10",
		ClockIn:       &in,
		Kind:          models.KindNormal,
	}}

	newIn := "09:05"
	out := "17:00"
	updated := ApplyEntryUpdate(entries, "1", EntryUpdate{ClockIn: &newIn, ClockOut: &out})

	assert.NotNil(t, updated)
	assert.Equal(t, "09:05", *updated.ClockIn)
	assert.Equal(t, "17:00", *updated.ClockOut)
	// untouched fields survive
	assert.Equal(t, "2025-03-10", updated.Date)
	assert.Equal(t, "1", updated.ID)
	assert.Equal(t, models.KindNormal, updated.Kind)
}

func TestApplyEntryUpdateEmptyStringClearsField(t *testing.T) {
	in := "09:00"
	entries := []models.Entry{{ID: "1", ClockIn: &in, Kind: models.KindNormal}}

	empty := ""
	updated := ApplyEntryUpdate(entries, "1", EntryUpdate{ClockIn: &empty})

	assert.NotNil(t, updated)
	assert.Nil(t, updated.ClockIn)
}

func TestDeleteEntryIdempotent(t *testing.T) {
	entries := []models.Entry{entryFor("ana@x.com", "1"), entryFor("bob@x.com", "2")}

	once := DeleteEntry(entries, "1")
	assert.Len(t, once, 1)
	assert.Equal(t, "2", once[0].ID)

	twice := DeleteEntry(once, "1")
	assert.Equal(t, once, twice)
}

func TestNewEntryID(t *testing.T) {
	a := NewEntryID(time.Date(2025, 3, 10, 12, 0, 0, 123, time.UTC))
	b := NewEntryID(time.Date(2025, 3, 10, 12, 0, 0, 456, time.UTC))

	assert.NotEqual(t, a, b)
	assert.NotEmpty(t, a)
}
