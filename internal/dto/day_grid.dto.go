package dto

import "github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/timetable"

// StaffColumnDTO is one vertical lane of the day view: a staff member
// (or the unassigned pseudo-lane) with its packed items and a per-slot
// occupancy mask aligned with DayGridDTO.Slots.
type StaffColumnDTO struct {
	StaffID   string                  `json:"staff_id"`
	StaffName string                  `json:"staff_name"`
	Items     []timetable.LaidOutItem `json:"items"`
	Occupied  []bool                  `json:"occupied"`
}

type DayGridDTO struct {
	Date    string           `json:"date"`
	Slots   []timetable.Slot `json:"slots"`
	Columns []StaffColumnDTO `json:"columns"`
}

type FreeSlotDTO struct {
	StaffID uint   `json:"staff_id"`
	Date    string `json:"date"`
	Start   string `json:"start"`
	End     string `json:"end"`
}
