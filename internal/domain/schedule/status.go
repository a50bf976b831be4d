package schedule

import "github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusArrived   Status = "arrived"
	StatusNoShow    Status = "no_show"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusPaid      Status = "paid"
)

func InitialStatus() Status {
	return StatusScheduled
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusArrived, StatusNoShow,
		StatusCancelled, StatusCompleted, StatusPaid:
		return true
	}
	return false
}

// transitions maps each status to the statuses it may move to.
// Terminal states (no_show, cancelled, paid) have no exits.
var transitions = map[Status][]Status{
	StatusScheduled: {StatusConfirmed, StatusArrived, StatusNoShow, StatusCancelled, StatusCompleted},
	StatusConfirmed: {StatusArrived, StatusNoShow, StatusCancelled, StatusCompleted},
	StatusArrived:   {StatusCompleted, StatusCancelled},
	StatusCompleted: {StatusPaid},
}

// ===============================
// Validations
// ===============================

func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state")
}

func CanCancel(current Status) error {
	return CanTransition(current, StatusCancelled)
}

func CanComplete(current Status) error {
	return CanTransition(current, StatusCompleted)
}
