package timetable

// SlotOccupied reports whether the slot starting at hour:minute is
// covered by any item in the staff column. Pass the break-augmented
// list when deciding whether click-to-create is allowed: a break only
// exists because real bookings bound it, so it counts as occupied.
func SlotOccupied(items []Appointment, hour, minute, stepMinutes int) bool {
	if stepMinutes <= 0 {
		stepMinutes = DefaultStepMinutes
	}

	slotStart := hour*60 + minute
	slotEnd := slotStart + stepMinutes

	for _, it := range items {
		if Overlaps(slotStart, slotEnd, ToMinutes(it.Start), ToMinutes(it.End)) {
			return true
		}
	}
	return false
}
