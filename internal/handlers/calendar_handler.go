package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/domain/schedule"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/httperr"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/httpresp"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/middleware"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/models"
	schedule "github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/usecase/schedule"
)

// CalendarHandler serves the read side of the day view: the packed
// grid the dashboard renders and the free-slot suggestion used when
// dragging a booking around.
type CalendarHandler struct {
	db       *gorm.DB
	dayGrid  *schedule.BuildDayGrid
	freeSlot *schedule.FindFreeSlot
}

func NewCalendarHandler(
	db *gorm.DB,
	dayGrid *schedule.BuildDayGrid,
	freeSlot *schedule.FindFreeSlot,
) *CalendarHandler {
	return &CalendarHandler{
		db:       db,
		dayGrid:  dayGrid,
		freeSlot: freeSlot,
	}
}

// DayGrid returns the render-ready grid for ?date=YYYY-MM-DD,
// optionally narrowed to one column with ?staff_id=.
func (h *CalendarHandler) DayGrid(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	staffID, ok := optionalStaffFilter(c)
	if !ok {
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.Internal(c, "salon_not_found", "Salon not found.")
		return
	}

	date, err := parseDateInSalon(&salon, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	grid, err := h.dayGrid.Execute(c.Request.Context(), domain.DayGridInput{
		SalonID: salonID,
		Date:    date,
		StaffID: staffID,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_build_grid", "Failed to build the day grid.")
		return
	}

	httpresp.OK(c, grid)
}

// FreeSlot answers "when is the next opening": ?staff_id=, ?date=,
// ?from=HH:MM and ?duration= in minutes.
func (h *CalendarHandler) FreeSlot(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	staffRaw := c.Query("staff_id")
	staffID64, err := strconv.ParseUint(staffRaw, 10, 64)
	if staffRaw == "" || err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Staff id is required.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	from := c.Query("from")
	if from == "" {
		httperr.BadRequest(c, "missing_from", "Start time is required.")
		return
	}

	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil || duration <= 0 {
		httperr.BadRequest(c, "invalid_duration", "Duration must be a positive number of minutes.")
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.Internal(c, "salon_not_found", "Salon not found.")
		return
	}

	date, err := parseDateInSalon(&salon, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	slot, err := h.freeSlot.Execute(c.Request.Context(), domain.FreeSlotInput{
		SalonID:     salonID,
		StaffID:     uint(staffID64),
		Date:        date,
		From:        from,
		DurationMin: duration,
	})
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	httpresp.OK(c, slot)
}
