package schedule

import (
	"context"
	"time"

	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		salonID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Staff --------
	ListStaff(
		ctx context.Context,
		salonID uint,
	) ([]models.User, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		salonID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		staffID uint,
		start time.Time,
		end time.Time,
		excludeID uint,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForSalon(
		ctx context.Context,
		appointmentID uint,
		salonID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Availability / day grid --------
	GetWorkingHours(
		ctx context.Context,
		staffID uint,
		weekday int,
	) (*models.WorkingHours, error)

	ListAppointmentsForDay(
		ctx context.Context,
		salonID uint,
		staffID *uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForStaffDay(
		ctx context.Context,
		staffID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		salonID uint,
		staffID *uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Finance --------
	CreateTransaction(
		ctx context.Context,
		tr *models.Transaction,
	) error
}
