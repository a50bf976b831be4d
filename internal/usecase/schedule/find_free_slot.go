package schedule

import (
	"context"
	"errors"
	"time"

	domain "github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/domain/schedule"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/dto"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/httperr"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/timetable"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/timezone"
)

// FindFreeSlot locates the first window a booking of the requested
// duration fits into, scanning forward from the desired start. The
// result is advisory: the create/reschedule path still runs its own
// conflict check inside the write transaction.
type FindFreeSlot struct {
	repo domain.Repository
}

func NewFindFreeSlot(repo domain.Repository) *FindFreeSlot {
	return &FindFreeSlot{repo: repo}
}

func (uc *FindFreeSlot) Execute(
	ctx context.Context,
	in domain.FreeSlotInput,
) (*dto.FreeSlotDTO, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(salon.Timezone)

	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		loc,
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForStaffDay(
		ctx,
		in.StaffID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	// Real bookings only; breaks are derived and would be recomputed
	// around whatever slot the caller picks.
	items := make([]timetable.Appointment, 0, len(appointments))
	for _, ap := range appointments {
		items = append(items, toGridAppointment(ap, loc))
	}

	start, err := timetable.NextFreeSlot(items, in.From, in.DurationMin, timetable.SearchConfig{})
	if err != nil {
		if errors.Is(err, timetable.ErrNoFreeSlot) {
			return nil, httperr.ErrBusiness("no_free_slot")
		}
		return nil, err
	}

	return &dto.FreeSlotDTO{
		StaffID: in.StaffID,
		Date:    dayStart.Format("2006-01-02"),
		Start:   start,
		End:     timetable.ToTimeString(timetable.ToMinutes(start) + in.DurationMin),
	}, nil
}
