package handlers

import (
	"time"

	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/models"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/timezone"
)

// All request dates and times are interpreted in the salon's own
// timezone; clients send plain wall-clock strings.

func locationFromSalon(salon *models.Salon) *time.Location {
	return timezone.Location(salon.Timezone)
}

func parseDateInSalon(salon *models.Salon, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromSalon(salon),
	)
}

func parseDateTimeInSalon(
	salon *models.Salon,
	dateStr string,
	timeStr string,
) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		locationFromSalon(salon),
	)
}
