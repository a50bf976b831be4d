package timetable

import (
	"fmt"
	"sort"
)

// DefaultBreakGap is the largest gap, in minutes, still shown as a
// break between two bookings. Longer gaps are just free time.
const DefaultBreakGap = 15

// BreakLabel is what synthetic breaks carry as service and client name.
const BreakLabel = "Break"

// WithBreaks returns the staff column's appointments plus a synthetic
// break for every gap of up to maxGap minutes between two adjacent
// bookings, the whole list sorted by start time. Breaks are rebuilt on
// every call and never persisted.
//
// The sort is stable with input order as tie-break, so re-rendering the
// same list never reshuffles items that share a start time.
func WithBreaks(items []Appointment, maxGap int) []Appointment {
	if len(items) == 0 {
		return nil
	}
	if maxGap <= 0 {
		maxGap = DefaultBreakGap
	}

	out := make([]Appointment, len(items))
	copy(out, items)
	sortByStart(out)

	var breaks []Appointment
	for i := 0; i+1 < len(out); i++ {
		cur, next := out[i], out[i+1]

		gap := ToMinutes(next.Start) - ToMinutes(cur.End)
		if gap <= 0 || gap > maxGap {
			continue
		}

		breaks = append(breaks, newBreak(cur.StaffID, cur.Date, ToMinutes(cur.End), ToMinutes(next.Start)))
	}

	if len(breaks) == 0 {
		return out
	}

	out = append(out, breaks...)
	sortByStart(out)
	return out
}

func sortByStart(items []Appointment) {
	sort.SliceStable(items, func(i, j int) bool {
		return ToMinutes(items[i].Start) < ToMinutes(items[j].Start)
	})
}

// newBreak fabricates a break pseudo-appointment. The id encodes the
// staff column and minute bounds, so the same gap always yields the
// same id.
func newBreak(staffID, date string, startMin, endMin int) Appointment {
	return Appointment{
		ID:         fmt.Sprintf("break-%s-%d-%d", staffID, startMin, endMin),
		StaffID:    staffID,
		Date:       date,
		Start:      ToTimeString(startMin),
		End:        ToTimeString(endMin),
		Kind:       KindBreak,
		Service:    BreakLabel,
		ClientName: BreakLabel,
	}
}
