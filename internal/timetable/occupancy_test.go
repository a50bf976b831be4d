package timetable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlotOccupied(t *testing.T) {
	items := []Appointment{
		appt("a1", "s1", "09:00", "09:45"),
	}

	cases := []struct {
		name         string
		hour, minute int
		want         bool
	}{
		{"slot inside booking", 9, 0, true},
		{"slot partially covered", 9, 30, true},
		{"slot right after booking", 9, 45, false},
		{"slot well before booking", 8, 0, false},
		{"slot ending exactly at start", 8, 30, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, SlotOccupied(items, c.hour, c.minute, 30))
		})
	}
}

func TestSlotOccupiedCountsBreaks(t *testing.T) {
	augmented := WithBreaks([]Appointment{
		appt("a1", "s1", "09:00", "09:30"),
		appt("a2", "s1", "09:45", "10:15"),
	}, DefaultBreakGap)

	// 09:30-10:00 slot overlaps the synthesized break
	require.True(t, SlotOccupied(augmented, 9, 30, 30))
}

func TestSlotOccupiedEmptyColumn(t *testing.T) {
	require.False(t, SlotOccupied(nil, 9, 0, 30))
}
