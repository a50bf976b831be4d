package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/domain/schedule"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/httperr"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *ScheduleGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *ScheduleGormRepository) GetService(
	ctx context.Context,
	salonID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", serviceID, salonID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Staff
// --------------------------------------------------

func (r *ScheduleGormRepository) ListStaff(
	ctx context.Context,
	salonID uint,
) ([]models.User, error) {

	var staff []models.User
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND active = true", salonID).
		Order("id ASC").
		Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *ScheduleGormRepository) GetOrCreateClient(
	ctx context.Context,
	salonID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("salon_id = ? AND phone = ?", salonID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		SalonID: salonID,
		Name:    name,
		Phone:   phone,
		Email:   email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

// AssertNoTimeConflict rejects a write that would overlap a live
// booking in the same staff column. Cancelled and no-show entries do
// not block the slot. The display layer never calls this; overlap is a
// write-time policy only.
func (r *ScheduleGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	staffID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) error {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"staff_id = ? AND status NOT IN ('cancelled', 'no_show') AND start_time < ? AND end_time > ?",
			staffID,
			end,
			start,
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("time_conflict")
	}

	return nil
}

func (r *ScheduleGormRepository) GetAppointmentForSalon(
	ctx context.Context,
	appointmentID uint,
	salonID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("id = ? AND salon_id = ?", appointmentID, salonID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Availability / day grid
// --------------------------------------------------

func (r *ScheduleGormRepository) GetWorkingHours(
	ctx context.Context,
	staffID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("staff_id = ? AND weekday = ?", staffID, weekday).
		First(&wh).Error; err != nil {
		return nil, err
	}

	return &wh, nil
}

// ListAppointmentsForDay feeds the day grid. staffID narrows to one
// column; nil loads the whole salon including unassigned bookings.
// Cancelled entries stay off the grid.
func (r *ScheduleGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	salonID uint,
	staffID *uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Staff").
		Where(
			"salon_id = ? AND status <> 'cancelled' AND start_time >= ? AND start_time < ?",
			salonID, start, end,
		)

	if staffID != nil {
		q = q.Where("staff_id = ?", *staffID)
	}

	var apps []models.Appointment
	if err := q.Order("start_time ASC").Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// ListAppointmentsForStaffDay loads only what blocks a staff member's
// time, for free-slot scans and availability.
func (r *ScheduleGormRepository) ListAppointmentsForStaffDay(
	ctx context.Context,
	staffID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "staff_id", "start_time", "end_time", "status").
		Where(
			"staff_id = ? AND status NOT IN ('cancelled', 'no_show') AND start_time >= ? AND start_time < ?",
			staffID, start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *ScheduleGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	salonID uint,
	staffID *uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Staff").
		Where(
			"salon_id = ? AND start_time >= ? AND start_time < ?",
			salonID, start, end,
		)

	if staffID != nil {
		q = q.Where("staff_id = ?", *staffID)
	}

	var apps []models.Appointment
	if err := q.Order("start_time ASC").Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Finance
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateTransaction(
	ctx context.Context,
	tr *models.Transaction,
) error {
	return r.db.WithContext(ctx).Create(tr).Error
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
