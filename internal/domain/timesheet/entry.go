package timesheet

import (
	"fmt"
	"time"

	"github.com/pontolago/ponto-api/internal/clock"
	"github.com/pontolago/ponto-api/internal/httperr"
	"github.com/pontolago/ponto-api/internal/models"
)

// DefaultBreakMinutes is the fixed lunch-break length applied to
// self-registered shifts.
const DefaultBreakMinutes = 40

// NewEntryID mints an entry id. Creation-timestamp based like the
// system this replaces, with a nanosecond tail so a burst of creates
// within the same millisecond still gets distinct ids. Ids are never
// reused: deletion is terminal.
func NewEntryID(now time.Time) string {
	return fmt.Sprintf("%d%03d", now.UnixMilli(), now.Nanosecond()%1000)
}

// NewShiftEntry builds a self-registered normal entry: generated
// clock-in/clock-out, caller-chosen break start, break end derived by
// adding the fixed break length. Role, location and break start are
// mandatory on this path.
func NewShiftEntry(
	id string,
	email string,
	date string,
	weekday string,
	role string,
	location string,
	breakStart string,
	clockIn string,
	clockOut string,
) (*models.Entry, error) {

	if role == "" || location == "" || breakStart == "" {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}
	if date == "" {
		return nil, httperr.ErrBusiness("missing_date")
	}

	breakEnd := clock.AddMinutes(breakStart, DefaultBreakMinutes)
	breakMin := DefaultBreakMinutes

	return &models.Entry{
		ID:            id,
		EmployeeEmail: email,
		Date:          date,
		Weekday:       weekday,
		Location:      location,
		Role:          role,
		ClockIn:       &clockIn,
		BreakStart:    &breakStart,
		BreakEnd:      &breakEnd,
		ClockOut:      &clockOut,
		BreakMinutes:  &breakMin,
		Kind:          models.KindNormal,
	}, nil
}

// ManualTimes are the admin-typed punch fields; any subset may be
// filled, the empty ones stay unset on the entry.
type ManualTimes struct {
	ClockIn    string
	BreakStart string
	BreakEnd   string
	ClockOut   string
}

// NewManualEntry builds an admin-created normal entry. Only the date
// is mandatory; the entry carries the fixed Manual/Admin tags.
func NewManualEntry(
	id string,
	email string,
	date string,
	weekday string,
	times ManualTimes,
) (*models.Entry, error) {

	if date == "" {
		return nil, httperr.ErrBusiness("missing_date")
	}

	return &models.Entry{
		ID:            id,
		EmployeeEmail: email,
		Date:          date,
		Weekday:       weekday,
		Location:      models.ManualLocation,
		Role:          models.ManualRole,
		ClockIn:       optional(times.ClockIn),
		BreakStart:    optional(times.BreakStart),
		BreakEnd:      optional(times.BreakEnd),
		ClockOut:      optional(times.ClockOut),
		Kind:          models.KindNormal,
	}, nil
}

// NewDayOff builds a day-off entry: no time fields, fixed "Folga"
// role. Nothing stops two day-offs landing on the same date; that is
// how the system has always behaved.
func NewDayOff(id, email, date, weekday string) *models.Entry {
	return &models.Entry{
		ID:            id,
		EmployeeEmail: email,
		Date:          date,
		Weekday:       weekday,
		Role:          models.DayOffRole,
		Kind:          models.KindDayOff,
	}
}

// EntryUpdate is a partial edit of an entry. Nil leaves the field
// alone; a pointer to the empty string clears a punch field. Kind and
// id are untouchable.
type EntryUpdate struct {
	Date       *string `json:"date,omitempty"`
	ClockIn    *string `json:"clock_in,omitempty"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
	ClockOut   *string `json:"clock_out,omitempty"`
}

// ApplyEntryUpdate merges upd into the entry with id in place. Returns
// the updated entry, or nil when the id is unknown -- in that case the
// slice is left untouched, matching the quiet no-op of the system this
// replaces.
func ApplyEntryUpdate(entries []models.Entry, id string, upd EntryUpdate) *models.Entry {
	for i := range entries {
		if entries[i].ID != id {
			continue
		}

		e := &entries[i]
		if upd.Date != nil && *upd.Date != "" {
			e.Date = *upd.Date
		}
		e.ClockIn = mergeTime(e.ClockIn, upd.ClockIn)
		e.BreakStart = mergeTime(e.BreakStart, upd.BreakStart)
		e.BreakEnd = mergeTime(e.BreakEnd, upd.BreakEnd)
		e.ClockOut = mergeTime(e.ClockOut, upd.ClockOut)
		return e
	}
	return nil
}

// DeleteEntry filters the entry with id out of the slice. Idempotent:
// an absent id returns the sequence unchanged.
func DeleteEntry(entries []models.Entry, id string) []models.Entry {
	out := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

// FindEntry returns the entry with id, or nil.
func FindEntry(entries []models.Entry, id string) *models.Entry {
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i]
		}
	}
	return nil
}

func mergeTime(current, upd *string) *string {
	if upd == nil {
		return current
	}
	return optional(*upd)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
