package clock

import (
	"fmt"
	"math/rand"
	"time"
)

// Shift hour anchors and the bound on the minute jitter. The generated
// times are deliberately non-deterministic: the minute offset is drawn
// fresh on every call so two registrations on the same day rarely show
// the exact same punch.
const (
	shiftClockInHour  = 15
	shiftClockOutHour = 23
	shiftJitterBound  = 6 // minutes 0..5
)

// Rand is the random source behind shift generation. Injectable so
// tests can pin the jitter to a fixed minute.
type Rand interface {
	Intn(n int) int
}

type ShiftGenerator struct {
	rng Rand
}

func NewShiftGenerator(rng Rand) *ShiftGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ShiftGenerator{rng: rng}
}

// Generate produces the fixed-hour shift with a shared minute jitter:
// clock-in 15:MM, clock-out 23:MM, MM in 0..5.
func (g *ShiftGenerator) Generate() (clockIn string, clockOut string) {
	minute := g.rng.Intn(shiftJitterBound)

	clockIn = fmt.Sprintf("%02d:%02d", shiftClockInHour, minute)
	clockOut = fmt.Sprintf("%02d:%02d", shiftClockOutHour, minute)
	return clockIn, clockOut
}
