package models

// Entry kinds. A day-off entry carries no time fields and the fixed
// role tag "Folga"; everything else is a normal shift record.
const (
	KindNormal = "normal"
	KindDayOff = "day-off"
)

// Tags stamped on entries created manually by an admin.
const (
	ManualRole     = "Manual"
	ManualLocation = "Admin"
)

// DayOffRole is the role tag of a day-off entry.
const DayOffRole = "Folga"

// Entry is one time-clock record for one employee on one date. The
// weekday is rendered once at creation time and stored as-is; it is
// never re-derived on read. Time-of-day fields are "HH:MM" strings and
// nil when not punched.
type Entry struct {
	ID            string  `json:"id"`
	EmployeeEmail string  `json:"employee_email"`
	Date          string  `json:"date"`
	Weekday       string  `json:"weekday"`
	Location      string  `json:"location"`
	Role          string  `json:"role"`
	ClockIn       *string `json:"clock_in,omitempty"`
	BreakStart    *string `json:"break_start,omitempty"`
	BreakEnd      *string `json:"break_end,omitempty"`
	ClockOut      *string `json:"clock_out,omitempty"`
	BreakMinutes  *int    `json:"break_minutes,omitempty"`
	Kind          string  `json:"kind"`
}

// IsDayOff reports whether the entry marks a day off.
func (e *Entry) IsDayOff() bool {
	return e.Kind == KindDayOff
}
