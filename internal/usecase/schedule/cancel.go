package schedule

import (
	"context"

	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/audit"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/cache"
	domain "github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/domain/schedule"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/httperr"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/models"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.GridCache
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	c *cache.GridCache,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		cache: c,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	salonID uint,
	actorID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForSalon(ctx, appointmentID, salonID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(salon.Timezone)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	loc := timezone.Location(salon.Timezone)
	uc.cache.InvalidateDay(ctx, salonID, ap.StartTime.In(loc).Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &actorID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
