package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/httperr"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/models"
)

func testService() models.Service {
	return models.Service{
		ID:          5,
		SalonID:     1,
		Name:        "Haircut",
		DurationMin: 60,
		Price:       450,
		Active:      true,
	}
}

func TestCreateAppointmentHappyPath(t *testing.T) {
	repo := newFakeRepo()
	repo.services = []models.Service{testService()}

	uc := NewCreateAppointment(repo, nil, nil)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		SalonID:     1,
		ActorID:     10,
		StaffID:     uintPtr(10),
		ClientName:  "Iryna",
		ClientPhone: "+380501112233",
		ServiceID:   5,
		Date:        "2025-03-10",
		Time:        "09:00",
	})
	require.NoError(t, err)

	require.Equal(t, "scheduled", ap.Status)
	require.Equal(t, "standard", ap.Type)
	require.Equal(t, 450.0, ap.Price)
	require.Equal(t, 60.0, ap.EndTime.Sub(ap.StartTime).Minutes())

	// Client was created on the fly.
	require.Len(t, repo.clients, 1)
	require.Equal(t, "Iryna", repo.clients[0].Name)
}

func TestCreateAppointmentRejectsConflict(t *testing.T) {
	repo := newFakeRepo()
	repo.services = []models.Service{testService()}

	uc := NewCreateAppointment(repo, nil, nil)

	first, err := uc.Execute(context.Background(), CreateAppointmentInput{
		SalonID: 1, ActorID: 10, StaffID: uintPtr(10),
		ClientName: "Iryna", ClientPhone: "+380501112233",
		ServiceID: 5, Date: "2025-03-10", Time: "09:00",
	})
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		SalonID: 1, ActorID: 10, StaffID: uintPtr(10),
		ClientName: "Olena", ClientPhone: "+380509998877",
		ServiceID: 5, Date: "2025-03-10", Time: "09:30",
	})
	require.Error(t, err)
	require.True(t, httperr.IsBusiness(err, "time_conflict"))
}

func TestCreateAppointmentUnassignedNeverConflicts(t *testing.T) {
	repo := newFakeRepo()
	repo.services = []models.Service{testService()}

	uc := NewCreateAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		SalonID: 1, ActorID: 10,
		ClientName: "Iryna", ClientPhone: "+380501112233",
		ServiceID: 5, Date: "2025-03-10", Time: "09:00",
	})
	require.NoError(t, err)

	// Second unassigned booking in the same window is fine.
	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		SalonID: 1, ActorID: 10,
		ClientName: "Olena", ClientPhone: "+380509998877",
		ServiceID: 5, Date: "2025-03-10", Time: "09:00",
	})
	require.NoError(t, err)
}

func TestCreateAppointmentAllowOverlapSkipsCheck(t *testing.T) {
	repo := newFakeRepo()
	repo.salon.AllowOverlap = true
	repo.services = []models.Service{testService()}

	uc := NewCreateAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		SalonID: 1, ActorID: 10, StaffID: uintPtr(10),
		ClientName: "Iryna", ClientPhone: "+380501112233",
		ServiceID: 5, Date: "2025-03-10", Time: "09:00",
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		SalonID: 1, ActorID: 10, StaffID: uintPtr(10),
		ClientName: "Olena", ClientPhone: "+380509998877",
		ServiceID: 5, Date: "2025-03-10", Time: "09:00",
	})
	require.NoError(t, err)
}

func TestCreateAppointmentRejectsUnknownType(t *testing.T) {
	repo := newFakeRepo()
	repo.services = []models.Service{testService()}

	uc := NewCreateAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		SalonID: 1, ActorID: 10,
		ClientName: "Iryna", ClientPhone: "+380501112233",
		ServiceID: 5, Date: "2025-03-10", Time: "09:00",
		Type: "vip",
	})
	require.Error(t, err)
	require.True(t, httperr.IsBusiness(err, "invalid_type"))
}

func TestCreateAppointmentPublicRequiresWorkingHours(t *testing.T) {
	repo := newFakeRepo()
	repo.salon.MinAdvanceMinutes = 1
	repo.services = []models.Service{testService()}
	// No working hours rows: every public booking is out of window.

	uc := NewCreateAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		SalonID: 1, ActorID: 0, StaffID: uintPtr(10),
		ClientName: "Iryna", ClientPhone: "+380501112233",
		ServiceID: 5, Date: "2099-06-01", Time: "10:00",
		EnforceMinAdvance: true,
	})
	require.Error(t, err)
	require.True(t, httperr.IsBusiness(err, "outside_working_hours"))
}

func TestCreateAppointmentEnforcesMinAdvance(t *testing.T) {
	repo := newFakeRepo()
	repo.services = []models.Service{testService()}

	uc := NewCreateAppointment(repo, nil, nil)

	// A date far in the past is always inside the advance window.
	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		SalonID: 1, ActorID: 10,
		ClientName: "Iryna", ClientPhone: "+380501112233",
		ServiceID: 5, Date: "2020-01-01", Time: "09:00",
		EnforceMinAdvance: true,
	})
	require.Error(t, err)
	require.True(t, httperr.IsBusiness(err, "too_soon"))
}
