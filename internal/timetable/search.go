package timetable

import "errors"

// ErrNoFreeSlot is returned when the forward scan exhausts its horizon
// without finding a window. Callers surface it as a "no slot found"
// message, never as a fatal condition.
var ErrNoFreeSlot = errors.New("no free slot within search horizon")

const (
	// DefaultSearchStep is the scan increment in minutes.
	DefaultSearchStep = 15
	// DefaultSearchHorizon caps the scan at 48 steps (~12 hours).
	DefaultSearchHorizon = 48
)

// SearchConfig bounds a free-slot scan. Zero values fall back to the
// defaults above.
type SearchConfig struct {
	StepMinutes int
	MaxSteps    int
}

// NextFreeSlot scans forward from the requested time in fixed
// increments and returns the first start at which a window of the given
// duration does not overlap any existing booking in items. Pass the
// real appointments only; breaks are recomputed from whatever layout
// the move produces, so they do not constrain the search.
//
// A linear scan is deliberate: a staff column holds tens of bookings a
// day at most. Candidates past midnight wrap via ToTimeString.
func NextFreeSlot(items []Appointment, from string, durationMin int, cfg SearchConfig) (string, error) {
	if cfg.StepMinutes <= 0 {
		cfg.StepMinutes = DefaultSearchStep
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = DefaultSearchHorizon
	}

	base := ToMinutes(from)

	for i := 0; i <= cfg.MaxSteps; i++ {
		start := base + i*cfg.StepMinutes
		end := start + durationMin

		free := true
		for _, it := range items {
			if Overlaps(start, end, ToMinutes(it.Start), ToMinutes(it.End)) {
				free = false
				break
			}
		}

		if free {
			return ToTimeString(start), nil
		}
	}

	return "", ErrNoFreeSlot
}
