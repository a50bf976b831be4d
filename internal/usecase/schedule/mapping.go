package schedule

import (
	"strconv"
	"time"

	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/models"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/timetable"
)

// toGridAppointment narrows a stored appointment to what the layout
// engine needs: wall-clock strings in the salon's own zone.
func toGridAppointment(ap models.Appointment, loc *time.Location) timetable.Appointment {
	staffID := timetable.StaffUnassigned
	if ap.StaffID != nil {
		staffID = strconv.FormatUint(uint64(*ap.StaffID), 10)
	}

	start := ap.StartTime.In(loc)
	end := ap.EndTime.In(loc)

	return timetable.Appointment{
		ID:          strconv.FormatUint(uint64(ap.ID), 10),
		StaffID:     staffID,
		Date:        start.Format("2006-01-02"),
		Start:       start.Format("15:04"),
		End:         end.Format("15:04"),
		Kind:        timetable.KindAppointment,
		Status:      ap.Status,
		Type:        ap.Type,
		ClientName:  ap.Client.Name,
		ClientPhone: ap.Client.Phone,
		Service:     ap.Service.Name,
		Notes:       ap.Notes,
		Price:       ap.Price,
	}
}

func gridConfigFor(salon *models.Salon) timetable.GridConfig {
	return timetable.GridConfig{
		StartHour:   salon.DayStartHour,
		EndHour:     salon.DayEndHour,
		StepMinutes: salon.SlotStepMinutes,
		WorkEndHour: salon.WorkEndHour,
	}
}
