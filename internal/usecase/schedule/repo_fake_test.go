package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/httperr"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/models"
)

// fakeRepo is an in-memory Repository for use-case tests. Lookups scan
// the slices; writes append to them.
type fakeRepo struct {
	salon        *models.Salon
	services     []models.Service
	staff        []models.User
	clients      []models.Client
	workingHours []models.WorkingHours
	appointments []models.Appointment
	transactions []models.Transaction

	nextID  uint
	failTxn bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salon: &models.Salon{
			ID:              1,
			Name:            "Test Salon",
			Slug:            "test-salon",
			Timezone:        "Europe/Kyiv",
			DayStartHour:    8,
			DayEndHour:      20,
			SlotStepMinutes: 30,
			WorkEndHour:     18,
			BreakGapMinutes: 15,
		},
		nextID: 100,
	}
}

func (r *fakeRepo) GetSalonByID(_ context.Context, id uint) (*models.Salon, error) {
	if r.salon == nil || r.salon.ID != id {
		return nil, errors.New("salon not found")
	}
	return r.salon, nil
}

func (r *fakeRepo) GetService(_ context.Context, salonID, serviceID uint) (*models.Service, error) {
	for i := range r.services {
		if r.services[i].ID == serviceID && r.services[i].SalonID == salonID {
			return &r.services[i], nil
		}
	}
	return nil, errors.New("service not found")
}

func (r *fakeRepo) ListStaff(_ context.Context, salonID uint) ([]models.User, error) {
	var out []models.User
	for _, u := range r.staff {
		if u.SalonID == salonID && u.Active {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetOrCreateClient(_ context.Context, salonID uint, name, phone, email string) (*models.Client, error) {
	for i := range r.clients {
		if r.clients[i].SalonID == salonID && r.clients[i].Phone == phone {
			return &r.clients[i], nil
		}
	}

	r.nextID++
	r.clients = append(r.clients, models.Client{
		ID:      r.nextID,
		SalonID: salonID,
		Name:    name,
		Phone:   phone,
		Email:   email,
	})
	return &r.clients[len(r.clients)-1], nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.nextID++
	ap.ID = r.nextID
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *fakeRepo) AssertNoTimeConflict(_ context.Context, staffID uint, start, end time.Time, excludeID uint) error {
	for _, ap := range r.appointments {
		if ap.ID == excludeID {
			continue
		}
		if ap.StaffID == nil || *ap.StaffID != staffID {
			continue
		}
		if ap.Status == "cancelled" || ap.Status == "no_show" {
			continue
		}
		if ap.StartTime.Before(end) && start.Before(ap.EndTime) {
			return httperr.ErrBusiness("time_conflict")
		}
	}
	return nil
}

func (r *fakeRepo) GetAppointmentForSalon(_ context.Context, appointmentID, salonID uint) (*models.Appointment, error) {
	for i := range r.appointments {
		if r.appointments[i].ID == appointmentID && r.appointments[i].SalonID == salonID {
			return &r.appointments[i], nil
		}
	}
	return nil, errors.New("appointment not found")
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i := range r.appointments {
		if r.appointments[i].ID == ap.ID {
			r.appointments[i] = *ap
			return nil
		}
	}
	return errors.New("appointment not found")
}

func (r *fakeRepo) GetWorkingHours(_ context.Context, staffID uint, weekday int) (*models.WorkingHours, error) {
	for i := range r.workingHours {
		if r.workingHours[i].StaffID == staffID && r.workingHours[i].Weekday == weekday {
			return &r.workingHours[i], nil
		}
	}
	return nil, errors.New("working hours not found")
}

func (r *fakeRepo) ListAppointmentsForDay(_ context.Context, salonID uint, staffID *uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.SalonID != salonID || ap.Status == "cancelled" {
			continue
		}
		if staffID != nil && (ap.StaffID == nil || *ap.StaffID != *staffID) {
			continue
		}
		if ap.StartTime.Before(end) && !ap.StartTime.Before(start) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForStaffDay(_ context.Context, staffID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.StaffID == nil || *ap.StaffID != staffID {
			continue
		}
		if ap.Status == "cancelled" || ap.Status == "no_show" {
			continue
		}
		if ap.StartTime.Before(end) && !ap.StartTime.Before(start) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForPeriod(_ context.Context, salonID uint, staffID *uint, start, end time.Time) ([]models.Appointment, error) {
	return r.ListAppointmentsForDay(context.Background(), salonID, staffID, start, end)
}

func (r *fakeRepo) CreateTransaction(_ context.Context, tr *models.Transaction) error {
	if r.failTxn {
		return errors.New("ledger unavailable")
	}
	r.nextID++
	tr.ID = r.nextID
	r.transactions = append(r.transactions, *tr)
	return nil
}
