package timetable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"00:15", 15},
		{"09:05", 545},
		{"14:35", 875},
		{"23:59", 1439},
		{"garbage", 0},
		{"", 0},
		{"xx:30", 30},
		{"10:xx", 600},
	}

	for _, c := range cases {
		require.Equal(t, c.want, ToMinutes(c.in), "ToMinutes(%q)", c.in)
	}
}

func TestToTimeString(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{15, "00:15"},
		{545, "09:05"},
		{1020, "17:00"},
		{1439, "23:59"},
		{1440, "00:00"},
		{1500, "01:00"},
		{-30, "23:30"},
	}

	for _, c := range cases {
		require.Equal(t, c.want, ToTimeString(c.in), "ToTimeString(%d)", c.in)
	}
}

func TestToMinutesRoundTrip(t *testing.T) {
	for m := 0; m < 1440; m++ {
		require.Equal(t, m, ToMinutes(ToTimeString(m)))
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"nested", 540, 600, 550, 560, true},
		{"partial", 540, 600, 570, 630, true},
		{"identical", 540, 600, 540, 600, true},
		{"disjoint", 540, 600, 660, 720, false},
		{"touching endpoints", 0, 60, 60, 120, false},
		{"touching reversed", 60, 120, 0, 60, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, Overlaps(c.aStart, c.aEnd, c.bStart, c.bEnd))
			// symmetry
			require.Equal(t, c.want, Overlaps(c.bStart, c.bEnd, c.aStart, c.aEnd))
		})
	}
}
