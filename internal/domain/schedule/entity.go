package schedule

import (
	"time"

	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/httperr"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/models"
)

// ===============================
// Appointment Types
// ===============================

const (
	TypeStandard  = "standard"
	TypeImportant = "important"
	TypeSpecial   = "special"
)

func IsValidType(t string) bool {
	return t == TypeStandard || t == TypeImportant || t == TypeSpecial
}

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func SetStatus(ap *models.Appointment, to Status, now time.Time) error {
	if !IsValidStatus(to) {
		return httperr.ErrBusiness("invalid_status")
	}

	switch to {
	case StatusCancelled:
		return Cancel(ap, now)
	case StatusCompleted:
		return Complete(ap, now)
	default:
		if err := CanTransition(Status(ap.Status), to); err != nil {
			return err
		}
		ap.Status = string(to)
		return nil
	}
}
