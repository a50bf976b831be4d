package timetable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func appt(id, staffID, start, end string) Appointment {
	return Appointment{
		ID:      id,
		StaffID: staffID,
		Date:    "2026-09-01",
		Start:   start,
		End:     end,
		Kind:    KindAppointment,
		Status:  "scheduled",
	}
}

func TestWithBreaksEmptyAndSingle(t *testing.T) {
	require.Empty(t, WithBreaks(nil, DefaultBreakGap))
	require.Empty(t, WithBreaks([]Appointment{}, DefaultBreakGap))

	out := WithBreaks([]Appointment{appt("a1", "s1", "09:00", "09:30")}, DefaultBreakGap)
	require.Len(t, out, 1)
	require.Equal(t, KindAppointment, out[0].Kind)
}

func TestWithBreaksFillsShortGap(t *testing.T) {
	out := WithBreaks([]Appointment{
		appt("a1", "s1", "09:00", "09:30"),
		appt("a2", "s1", "09:45", "10:15"),
	}, DefaultBreakGap)

	require.Len(t, out, 3)
	require.Equal(t, "a1", out[0].ID)
	require.Equal(t, KindBreak, out[1].Kind)
	require.Equal(t, "09:30", out[1].Start)
	require.Equal(t, "09:45", out[1].End)
	require.Equal(t, BreakLabel, out[1].Service)
	require.Equal(t, "break-s1-570-585", out[1].ID)
	require.Equal(t, "a2", out[2].ID)
}

func TestWithBreaksGapRules(t *testing.T) {
	cases := []struct {
		name       string
		secondFrom string
		wantBreaks int
	}{
		{"zero gap", "09:30", 0},
		{"ten minute gap", "09:40", 1},
		{"exactly threshold", "09:45", 1},
		{"past threshold", "09:46", 0},
		{"overlapping", "09:15", 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := WithBreaks([]Appointment{
				appt("a1", "s1", "09:00", "09:30"),
				appt("a2", "s1", c.secondFrom, "10:30"),
			}, DefaultBreakGap)

			breaks := 0
			for _, it := range out {
				if it.Kind == KindBreak {
					breaks++
				}
			}
			require.Equal(t, c.wantBreaks, breaks)
		})
	}
}

func TestWithBreaksSortsUnorderedInput(t *testing.T) {
	out := WithBreaks([]Appointment{
		appt("late", "s1", "14:00", "15:00"),
		appt("early", "s1", "09:00", "09:30"),
		appt("mid", "s1", "09:40", "10:00"),
	}, DefaultBreakGap)

	require.Len(t, out, 4)
	require.Equal(t, "early", out[0].ID)
	require.Equal(t, KindBreak, out[1].Kind)
	require.Equal(t, "mid", out[2].ID)
	require.Equal(t, "late", out[3].ID)
}

func TestWithBreaksCustomThreshold(t *testing.T) {
	out := WithBreaks([]Appointment{
		appt("a1", "s1", "09:00", "09:30"),
		appt("a2", "s1", "10:00", "10:30"),
	}, 30)

	require.Len(t, out, 3)
	require.Equal(t, KindBreak, out[1].Kind)
	require.Equal(t, "09:30", out[1].Start)
	require.Equal(t, "10:00", out[1].End)
}

func TestWithBreaksDoesNotMutateInput(t *testing.T) {
	in := []Appointment{
		appt("b", "s1", "10:00", "10:30"),
		appt("a", "s1", "09:00", "09:30"),
	}
	_ = WithBreaks(in, DefaultBreakGap)

	require.Equal(t, "b", in[0].ID)
	require.Equal(t, "a", in[1].ID)
}
