package timetable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testGrid = GridConfig{
	StartHour:    8,
	EndHour:      20,
	StepMinutes:  30,
	WorkEndHour:  18,
	SlotHeightPx: 40,
}

func TestLayoutEmpty(t *testing.T) {
	require.Empty(t, Layout(nil, testGrid))
}

func TestLayoutOverlappingPairSharesCluster(t *testing.T) {
	out := Layout([]Appointment{
		appt("a1", "s1", "09:00", "09:30"),
		appt("a2", "s1", "09:15", "09:45"),
	}, testGrid)

	require.Len(t, out, 2)
	require.Equal(t, 2, out[0].ColumnCount)
	require.Equal(t, 2, out[1].ColumnCount)
	require.ElementsMatch(t, []int{0, 1}, []int{out[0].ColumnIndex, out[1].ColumnIndex})
	require.InDelta(t, 50.0, out[0].WidthPct, 1e-9)
	require.InDelta(t, 50.0, out[1].WidthPct, 1e-9)
}

func TestLayoutTouchingAppointmentsStaySeparate(t *testing.T) {
	out := Layout([]Appointment{
		appt("a1", "s1", "09:00", "09:30"),
		appt("a2", "s1", "09:30", "10:00"),
	}, testGrid)

	require.Len(t, out, 2)
	for _, it := range out {
		require.Equal(t, 1, it.ColumnCount)
		require.Equal(t, 0, it.ColumnIndex)
		require.InDelta(t, 100.0, it.WidthPct, 1e-9)
		require.InDelta(t, 0.0, it.LeftPct, 1e-9)
	}
}

// A middle item chaining two non-overlapping outer items pulls all
// three into one cluster with three columns. The outer two could share
// a column, but the greedy packer keeps them apart; that rendering is
// part of the contract.
func TestLayoutChainedOverlapKeepsGreedyColumns(t *testing.T) {
	out := Layout([]Appointment{
		appt("first", "s1", "09:00", "10:00"),
		appt("bridge", "s1", "09:30", "10:30"),
		appt("last", "s1", "10:00", "11:00"),
	}, testGrid)

	require.Len(t, out, 3)
	for i, it := range out {
		require.Equal(t, 3, it.ColumnCount)
		require.Equal(t, i, it.ColumnIndex)
	}
}

func TestLayoutFirstMatchingClusterWins(t *testing.T) {
	// Two disjoint clusters, then an item overlapping only the second.
	out := Layout([]Appointment{
		appt("morning", "s1", "09:00", "09:30"),
		appt("noon", "s1", "12:00", "13:00"),
		appt("noon2", "s1", "12:30", "13:30"),
	}, testGrid)

	require.Equal(t, 1, out[0].ColumnCount)
	require.Equal(t, 2, out[1].ColumnCount)
	require.Equal(t, 2, out[2].ColumnCount)
	require.Equal(t, 0, out[1].ColumnIndex)
	require.Equal(t, 1, out[2].ColumnIndex)
}

func TestLayoutPixelGeometry(t *testing.T) {
	out := Layout([]Appointment{
		appt("a1", "s1", "09:00", "10:00"),
	}, testGrid)

	require.Len(t, out, 1)
	it := out[0]
	require.Equal(t, 540, it.StartMinutes)
	require.Equal(t, 600, it.EndMinutes)
	// one hour past an 8:00 grid start at 40px per 30-minute slot
	require.InDelta(t, 80.0, it.TopOffset, 1e-9)
	require.InDelta(t, 80.0, it.Height, 1e-9)
	require.InDelta(t, 100.0, it.WidthPct, 1e-9)
	require.InDelta(t, 0.0, it.LeftPct, 1e-9)
}

func TestLayoutDeterministicOnEqualStarts(t *testing.T) {
	in := []Appointment{
		appt("a1", "s1", "09:00", "09:30"),
		appt("a2", "s1", "09:00", "10:00"),
		appt("a3", "s1", "09:00", "09:45"),
	}

	first := Layout(in, testGrid)
	for run := 0; run < 10; run++ {
		again := Layout(in, testGrid)
		require.Equal(t, first, again)
	}

	// stable sort keeps input order for identical start times
	require.Equal(t, "a1", first[0].ID)
	require.Equal(t, "a2", first[1].ID)
	require.Equal(t, "a3", first[2].ID)
}

func TestLayoutAfterBreakSynthesis(t *testing.T) {
	augmented := WithBreaks([]Appointment{
		appt("a1", "s1", "09:00", "09:30"),
		appt("a2", "s1", "09:45", "10:15"),
	}, DefaultBreakGap)

	out := Layout(augmented, testGrid)

	require.Len(t, out, 3)
	require.Equal(t, KindBreak, out[1].Kind)
	// no overlaps anywhere, every item full width
	for _, it := range out {
		require.Equal(t, 1, it.ColumnCount)
	}
}
