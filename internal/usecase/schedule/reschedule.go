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

type RescheduleInput struct {
	SalonID       uint
	ActorID       uint
	AppointmentID uint

	// New placement. StaffID nil moves the booking to the unassigned
	// lane; Date/Time empty keep the current day/start.
	StaffID     *uint
	ClearStaff  bool
	Date        string
	Time        string
}

// Reschedule moves a booking to a new staff column and/or start time,
// keeping its duration. The dashboard typically calls FindFreeSlot
// first and feeds the suggestion back in here.
type Reschedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.GridCache
}

func NewReschedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
	c *cache.GridCache,
) *Reschedule {
	return &Reschedule{
		repo:  repo,
		audit: audit,
		cache: c,
	}
}

func (uc *Reschedule) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForSalon(ctx, in.AppointmentID, in.SalonID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	switch domain.Status(ap.Status) {
	case domain.StatusScheduled, domain.StatusConfirmed:
		// movable
	default:
		return nil, httperr.ErrBusiness("invalid_state")
	}

	loc := timezone.Location(salon.Timezone)
	oldDate := ap.StartTime.In(loc).Format("2006-01-02")
	duration := ap.EndTime.Sub(ap.StartTime)

	date := in.Date
	if date == "" {
		date = oldDate
	}
	timeStr := in.Time
	if timeStr == "" {
		timeStr = ap.StartTime.In(loc).Format("15:04")
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+timeStr, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	end := start.Add(duration)

	staffID := ap.StaffID
	if in.ClearStaff {
		staffID = nil
	} else if in.StaffID != nil {
		staffID = in.StaffID
	}

	if staffID != nil && !salon.AllowOverlap {
		if err := uc.repo.AssertNoTimeConflict(
			ctx,
			*staffID,
			start,
			end,
			ap.ID,
		); err != nil {
			return nil, err
		}
	}

	ap.StaffID = staffID
	ap.StartTime = start
	ap.EndTime = end

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, in.SalonID, oldDate)
	uc.cache.InvalidateDay(ctx, in.SalonID, start.In(loc).Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   &in.ActorID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
