package timetable

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 1440

// ToMinutes converts an "HH:MM" string to minutes since midnight.
// Callers are expected to pass well-formed times; unparseable
// fragments count as zero rather than failing the whole render.
func ToMinutes(t string) int {
	hh, mm, found := strings.Cut(t, ":")
	if !found {
		return 0
	}

	h, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil {
		h = 0
	}
	m, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil {
		m = 0
	}

	return h*60 + m
}

// ToTimeString is the inverse of ToMinutes, zero-padded. Offsets are
// taken modulo one day so forward scans past midnight wrap around.
func ToTimeString(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not overlap: an
// appointment ending 10:00 does not conflict with one starting 10:00.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
