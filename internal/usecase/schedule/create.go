package schedule

import (
	"context"
	"time"

	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/audit"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/cache"
	domain "github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/domain/schedule"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/httperr"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/models"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	SalonID uint
	ActorID uint

	// StaffID nil books into the unassigned lane.
	StaffID *uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Type  string
	Notes string

	// Public bookings enforce the salon's minimum advance window;
	// staff booking from the dashboard may backfill freely.
	EnforceMinAdvance bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.GridCache
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	c *cache.GridCache,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		cache: c,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(salon.Timezone)

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if in.EnforceMinAdvance {
		minAdvance := salon.MinAdvanceMinutes
		if minAdvance <= 0 {
			minAdvance = 120
		}

		now := timezone.NowIn(salon.Timezone)
		if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
			return nil, httperr.ErrBusiness("too_soon")
		}
	}

	service, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// Public bookings must land inside the staff member's working
	// window; the dashboard may backfill outside it (the grid flags
	// after-work slots instead of refusing them).
	if in.EnforceMinAdvance && in.StaffID != nil {
		if err := uc.assertWithinWorkingHours(ctx, *in.StaffID, start, end, loc); err != nil {
			return nil, err
		}
	}

	apType := in.Type
	if apType == "" {
		apType = domain.TypeStandard
	}
	if !domain.IsValidType(apType) {
		return nil, httperr.ErrBusiness("invalid_type")
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.SalonID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	// Overlap policy lives here, at write time. The day grid renders
	// whatever exists, overlaps included; a salon that allows double
	// booking skips the conflict check entirely. The unassigned lane
	// never conflicts.
	if in.StaffID != nil && !salon.AllowOverlap {
		if err := uc.repo.AssertNoTimeConflict(
			ctx,
			*in.StaffID,
			start,
			end,
			0,
		); err != nil {
			return nil, err
		}
	}

	ap := &models.Appointment{
		SalonID:   in.SalonID,
		StaffID:   in.StaffID,
		ClientID:  client.ID,
		ServiceID: service.ID,
		StartTime: start,
		EndTime:   end,
		Status:    string(domain.InitialStatus()),
		Type:      apType,
		Price:     service.Price,
		Notes:     in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, in.SalonID, start.Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   &in.ActorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *CreateAppointment) assertWithinWorkingHours(
	ctx context.Context,
	staffID uint,
	start time.Time,
	end time.Time,
	loc *time.Location,
) error {

	wh, err := uc.repo.GetWorkingHours(ctx, staffID, int(start.Weekday()))
	if err != nil || !wh.Active {
		return httperr.ErrBusiness("outside_working_hours")
	}

	dayAt := func(hm string) time.Time {
		t, err := time.Parse("15:04", hm)
		if err != nil {
			return time.Time{}
		}
		return time.Date(
			start.Year(), start.Month(), start.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	workStart := dayAt(wh.StartTime)
	workEnd := dayAt(wh.EndTime)
	if start.Before(workStart) || end.After(workEnd) {
		return httperr.ErrBusiness("outside_working_hours")
	}

	if wh.LunchStart != "" && wh.LunchEnd != "" {
		lunchStart := dayAt(wh.LunchStart)
		lunchEnd := dayAt(wh.LunchEnd)
		if start.Before(lunchEnd) && end.After(lunchStart) {
			return httperr.ErrBusiness("outside_working_hours")
		}
	}

	return nil
}
