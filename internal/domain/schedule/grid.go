package schedule

import "time"

// DayGridInput selects one day of the calendar, optionally narrowed to
// a single staff column. StaffID nil means every column including the
// unassigned one.
type DayGridInput struct {
	SalonID uint
	Date    time.Time
	StaffID *uint
}

// FreeSlotInput asks for the first window of DurationMin minutes at or
// after From ("HH:MM") in the staff member's day.
type FreeSlotInput struct {
	SalonID     uint
	StaffID     uint
	Date        time.Time
	From        string
	DurationMin int
}

type AvailabilityInput struct {
	SalonID   uint
	StaffID   uint
	ServiceID uint
	Date      time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
