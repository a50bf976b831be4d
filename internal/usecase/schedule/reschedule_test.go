package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/httperr"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/models"
)

func TestRescheduleMovesStartKeepingDuration(t *testing.T) {
	repo := newFakeRepo()
	loc := kyiv(t)

	repo.appointments = []models.Appointment{
		{
			ID: 1, SalonID: 1, StaffID: uintPtr(10),
			StartTime: at(loc, 10, 0), EndTime: at(loc, 10, 45),
			Status: "scheduled", Type: "standard",
		},
	}

	uc := NewReschedule(repo, nil, nil)

	ap, err := uc.Execute(context.Background(), RescheduleInput{
		SalonID:       1,
		ActorID:       10,
		AppointmentID: 1,
		Time:          "14:00",
	})
	require.NoError(t, err)

	require.Equal(t, at(loc, 14, 0), ap.StartTime.In(loc))
	require.Equal(t, 45.0, ap.EndTime.Sub(ap.StartTime).Minutes())
}

func TestRescheduleToAnotherStaffChecksConflicts(t *testing.T) {
	repo := newFakeRepo()
	loc := kyiv(t)

	repo.appointments = []models.Appointment{
		{
			ID: 1, SalonID: 1, StaffID: uintPtr(10),
			StartTime: at(loc, 10, 0), EndTime: at(loc, 11, 0),
			Status: "scheduled", Type: "standard",
		},
		{
			ID: 2, SalonID: 1, StaffID: uintPtr(11),
			StartTime: at(loc, 10, 0), EndTime: at(loc, 11, 0),
			Status: "scheduled", Type: "standard",
		},
	}

	uc := NewReschedule(repo, nil, nil)

	_, err := uc.Execute(context.Background(), RescheduleInput{
		SalonID:       1,
		ActorID:       10,
		AppointmentID: 1,
		StaffID:       uintPtr(11),
	})
	require.Error(t, err)
	require.True(t, httperr.IsBusiness(err, "time_conflict"))
}

func TestRescheduleExcludesItselfFromConflictCheck(t *testing.T) {
	repo := newFakeRepo()
	loc := kyiv(t)

	repo.appointments = []models.Appointment{
		{
			ID: 1, SalonID: 1, StaffID: uintPtr(10),
			StartTime: at(loc, 10, 0), EndTime: at(loc, 11, 0),
			Status: "scheduled", Type: "standard",
		},
	}

	uc := NewReschedule(repo, nil, nil)

	// Nudging a booking within its own window must not self-conflict.
	ap, err := uc.Execute(context.Background(), RescheduleInput{
		SalonID:       1,
		ActorID:       10,
		AppointmentID: 1,
		Time:          "10:30",
	})
	require.NoError(t, err)
	require.Equal(t, at(loc, 10, 30), ap.StartTime.In(loc))
}

func TestRescheduleClearStaffMovesToUnassigned(t *testing.T) {
	repo := newFakeRepo()
	loc := kyiv(t)

	repo.appointments = []models.Appointment{
		{
			ID: 1, SalonID: 1, StaffID: uintPtr(10),
			StartTime: at(loc, 10, 0), EndTime: at(loc, 11, 0),
			Status: "scheduled", Type: "standard",
		},
	}

	uc := NewReschedule(repo, nil, nil)

	ap, err := uc.Execute(context.Background(), RescheduleInput{
		SalonID:       1,
		ActorID:       10,
		AppointmentID: 1,
		ClearStaff:    true,
	})
	require.NoError(t, err)
	require.Nil(t, ap.StaffID)
}

func TestRescheduleRejectsTerminalStates(t *testing.T) {
	repo := newFakeRepo()
	loc := kyiv(t)

	repo.appointments = []models.Appointment{
		{
			ID: 1, SalonID: 1, StaffID: uintPtr(10),
			StartTime: at(loc, 10, 0), EndTime: at(loc, 11, 0),
			Status: "completed", Type: "standard",
		},
	}

	uc := NewReschedule(repo, nil, nil)

	_, err := uc.Execute(context.Background(), RescheduleInput{
		SalonID:       1,
		ActorID:       10,
		AppointmentID: 1,
		Time:          "14:00",
	})
	require.Error(t, err)
	require.True(t, httperr.IsBusiness(err, "invalid_state"))
}
