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

// UpdateStatus moves an appointment along its lifecycle (confirmed,
// arrived, no-show, completed, paid). Completing posts an income entry
// to the finance ledger with the booked price.
type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.GridCache
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	c *cache.GridCache,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
		cache: c,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	salonID uint,
	actorID uint,
	appointmentID uint,
	to domain.Status,
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
	if err := domain.SetStatus(ap, to, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if to == domain.StatusCompleted && ap.Price > 0 {
		tr := &models.Transaction{
			SalonID:       salonID,
			Kind:          models.TransactionIncome,
			Category:      ap.Service.Category,
			Amount:        ap.Price,
			Description:   ap.Service.Name,
			AppointmentID: &ap.ID,
			OccurredAt:    now,
		}
		if err := uc.repo.CreateTransaction(ctx, tr); err != nil {
			// Ledger write failure must not undo the status change;
			// the audit trail still records the completion.
			uc.audit.Dispatch(audit.Event{
				SalonID:  salonID,
				UserID:   &actorID,
				Action:   "transaction_write_failed",
				Entity:   "appointment",
				EntityID: &ap.ID,
			})
		}
	}

	loc := timezone.Location(salon.Timezone)
	uc.cache.InvalidateDay(ctx, salonID, ap.StartTime.In(loc).Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &actorID,
		Action:   "appointment_status_" + string(to),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
