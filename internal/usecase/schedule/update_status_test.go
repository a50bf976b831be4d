package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/domain/schedule"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/httperr"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/models"
)

func TestUpdateStatusPostsIncomeOnCompletion(t *testing.T) {
	repo := newFakeRepo()
	loc := kyiv(t)

	repo.appointments = []models.Appointment{
		{
			ID: 1, SalonID: 1, StaffID: uintPtr(10),
			StartTime: at(loc, 10, 0), EndTime: at(loc, 11, 0),
			Status: "arrived", Type: "standard", Price: 450,
			Service: models.Service{Name: "Haircut", Category: "hair"},
		},
	}

	uc := NewUpdateStatus(repo, nil, nil)

	ap, err := uc.Execute(context.Background(), 1, 10, 1, domain.StatusCompleted)
	require.NoError(t, err)

	require.Equal(t, "completed", ap.Status)
	require.NotNil(t, ap.CompletedAt)

	require.Len(t, repo.transactions, 1)
	tr := repo.transactions[0]
	require.Equal(t, models.TransactionIncome, tr.Kind)
	require.Equal(t, 450.0, tr.Amount)
	require.Equal(t, "hair", tr.Category)
	require.NotNil(t, tr.AppointmentID)
	require.Equal(t, uint(1), *tr.AppointmentID)
}

func TestUpdateStatusLedgerFailureKeepsCompletion(t *testing.T) {
	repo := newFakeRepo()
	loc := kyiv(t)
	repo.failTxn = true

	repo.appointments = []models.Appointment{
		{
			ID: 1, SalonID: 1, StaffID: uintPtr(10),
			StartTime: at(loc, 10, 0), EndTime: at(loc, 11, 0),
			Status: "arrived", Type: "standard", Price: 450,
		},
	}

	uc := NewUpdateStatus(repo, nil, nil)

	ap, err := uc.Execute(context.Background(), 1, 10, 1, domain.StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, "completed", ap.Status)
	require.Empty(t, repo.transactions)
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	repo := newFakeRepo()
	loc := kyiv(t)

	repo.appointments = []models.Appointment{
		{
			ID: 1, SalonID: 1, StaffID: uintPtr(10),
			StartTime: at(loc, 10, 0), EndTime: at(loc, 11, 0),
			Status: "cancelled", Type: "standard",
		},
	}

	uc := NewUpdateStatus(repo, nil, nil)

	_, err := uc.Execute(context.Background(), 1, 10, 1, domain.StatusConfirmed)
	require.Error(t, err)
	require.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancelAppointment(t *testing.T) {
	repo := newFakeRepo()
	loc := kyiv(t)

	repo.appointments = []models.Appointment{
		{
			ID: 1, SalonID: 1, StaffID: uintPtr(10),
			StartTime: at(loc, 10, 0), EndTime: at(loc, 11, 0),
			Status: "scheduled", Type: "standard",
		},
	}

	uc := NewCancelAppointment(repo, nil, nil)

	ap, err := uc.Execute(context.Background(), 1, 10, 1)
	require.NoError(t, err)
	require.Equal(t, "cancelled", ap.Status)
	require.NotNil(t, ap.CancelledAt)
}
