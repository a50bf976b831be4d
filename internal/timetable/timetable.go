// Package timetable lays out one day of salon appointments onto the
// calendar grid: it fills short gaps with synthetic breaks, packs
// overlapping entries into side-by-side columns and answers slot
// occupancy / free-slot queries. Everything here is pure: inputs are
// passed in, nothing is read from globals and identical inputs always
// produce identical output.
package timetable

// StaffUnassigned is the pseudo staff id for appointments nobody has
// picked up yet. They render in their own column.
const StaffUnassigned = "unassigned"

type Kind string

const (
	KindAppointment Kind = "appointment"
	KindBreak       Kind = "break"
)

// Appointment is the grid's view of a booking. The persistence layer
// owns the richer model; only what layout needs is carried here.
type Appointment struct {
	ID      string `json:"id"`
	StaffID string `json:"staff_id"`
	Date    string `json:"date"`       // YYYY-MM-DD
	Start   string `json:"start_time"` // HH:MM, 24h
	End     string `json:"end_time"`   // HH:MM, always after Start

	Kind   Kind   `json:"kind"`
	Status string `json:"status"`
	Type   string `json:"type"`

	ClientName  string  `json:"client_name,omitempty"`
	ClientPhone string  `json:"client_phone,omitempty"`
	Service     string  `json:"service,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	Price       float64 `json:"price,omitempty"`
}

// GridConfig drives slot generation and pixel geometry.
type GridConfig struct {
	StartHour    int // first slot, inclusive
	EndHour      int // last slot, inclusive
	StepMinutes  int
	WorkEndHour  int // slots at or past this hour are flagged after-work
	SlotHeightPx int // rendered height of one step
}

const (
	DefaultStartHour    = 8
	DefaultEndHour      = 20
	DefaultStepMinutes  = 30
	DefaultWorkEndHour  = 18
	DefaultSlotHeightPx = 40
)

func (c GridConfig) withDefaults() GridConfig {
	if c.StartHour <= 0 {
		c.StartHour = DefaultStartHour
	}
	if c.EndHour <= 0 {
		c.EndHour = DefaultEndHour
	}
	if c.StepMinutes <= 0 {
		c.StepMinutes = DefaultStepMinutes
	}
	if c.WorkEndHour <= 0 {
		c.WorkEndHour = DefaultWorkEndHour
	}
	if c.SlotHeightPx <= 0 {
		c.SlotHeightPx = DefaultSlotHeightPx
	}
	return c
}
