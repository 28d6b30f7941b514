package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

const minutesPerDay = 24 * 60

// Weekday names rendered the way the UI always did: pt-BR long form.
var weekdayNames = [7]string{
	"domingo",
	"segunda-feira",
	"terça-feira",
	"quarta-feira",
	"quinta-feira",
	"sexta-feira",
	"sábado",
}

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// DateAndWeekday renders t as an ISO date plus the pt-BR weekday name.
func DateAndWeekday(t time.Time) (date string, weekday string) {
	return t.Format("2006-01-02"), weekdayNames[int(t.Weekday())]
}

// Today is DateAndWeekday of the current São Paulo time.
func Today() (date string, weekday string) {
	return DateAndWeekday(Now())
}

// AddMinutes adds delta minutes to an "HH:MM" time of day, wrapping
// modulo 24 hours. The day overflow is discarded: entries carry a
// single time-of-day field, no day component. Unparseable input is
// returned unchanged.
func AddMinutes(hm string, delta int) string {
	h, m, ok := parseHM(hm)
	if !ok {
		return hm
	}

	total := (h*60 + m + delta) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}

	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func parseHM(hm string) (h, m int, ok bool) {
	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}

	m, err = strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}

	return h, m, true
}
