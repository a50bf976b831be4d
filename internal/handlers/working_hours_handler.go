package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/httperr"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/middleware"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type WorkingDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	Active     bool   `json:"active"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

// targetStaff resolves whose schedule is being read or written. Staff
// always operate on their own hours; an owner may pass ?staff_id= to
// manage someone else's.
func (h *WorkingHoursHandler) targetStaff(c *gin.Context) (uint, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	raw := c.Query("staff_id")
	if raw == "" {
		return userID, true
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Invalid staff id.")
		return 0, false
	}

	staffID := uint(id)
	if staffID == userID {
		return staffID, true
	}

	if role != "owner" {
		httperr.Forbidden(c, "forbidden", "Only the owner may manage other staff schedules.")
		return 0, false
	}

	var staff models.User
	if err := h.db.
		Where("id = ? AND salon_id = ?", staffID, salonID).
		First(&staff).Error; err != nil {

		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return 0, false
	}

	return staffID, true
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	staffID, ok := h.targetStaff(c)
	if !ok {
		return
	}

	var hours []models.WorkingHours
	if err := h.db.
		Where("staff_id = ?", staffID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_working_hours", "Failed to load working hours.")
		return
	}

	c.JSON(200, hours)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	staffID, ok := h.targetStaff(c)
	if !ok {
		return
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	// Full replace: the dashboard always submits the whole week.
	if err := h.db.Where("staff_id = ?", staffID).Delete(&models.WorkingHours{}).Error; err != nil {
		httperr.Internal(c, "failed_to_clear_existing_hours", "Failed to update working hours.")
		return
	}

	var toCreate []models.WorkingHours
	for _, d := range req.Days {
		toCreate = append(toCreate, models.WorkingHours{
			StaffID:    staffID,
			Weekday:    d.Weekday,
			Active:     d.Active,
			StartTime:  d.StartTime,
			EndTime:    d.EndTime,
			LunchStart: d.LunchStart,
			LunchEnd:   d.LunchEnd,
		})
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			httperr.Internal(c, "failed_to_save_working_hours", "Failed to save working hours.")
			return
		}
	}

	c.JSON(200, gin.H{"status": "ok"})
}
