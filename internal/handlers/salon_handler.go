package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/httperr"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/middleware"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/models"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/timezone"
)

type SalonHandler struct {
	db *gorm.DB
}

func NewSalonHandler(db *gorm.DB) *SalonHandler {
	return &SalonHandler{db: db}
}

type UpdateSalonConfigRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Timezone *string `json:"timezone"`

	DayStartHour    *int `json:"day_start_hour"`
	DayEndHour      *int `json:"day_end_hour"`
	SlotStepMinutes *int `json:"slot_step_minutes"`
	WorkEndHour     *int `json:"work_end_hour"`
	BreakGapMinutes *int `json:"break_gap_minutes"`

	MinAdvanceMinutes *int  `json:"min_advance_minutes"`
	AllowOverlap      *bool `json:"allow_overlap"`
}

func (h *SalonHandler) GetMeSalon(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "salon_not_found", "Salon not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_salon", "Failed to load salon.")
		return
	}

	c.JSON(http.StatusOK, salon)
}

func (h *SalonHandler) UpdateMeSalon(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "salon_not_found", "Salon not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_salon", "Failed to load salon.")
		return
	}

	var req UpdateSalonConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	if req.Name != nil {
		salon.Name = *req.Name
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown timezone.")
			return
		}
		salon.Timezone = *req.Timezone
	}

	if req.DayStartHour != nil {
		salon.DayStartHour = *req.DayStartHour
	}
	if req.DayEndHour != nil {
		salon.DayEndHour = *req.DayEndHour
	}
	if req.SlotStepMinutes != nil {
		salon.SlotStepMinutes = *req.SlotStepMinutes
	}
	if req.WorkEndHour != nil {
		salon.WorkEndHour = *req.WorkEndHour
	}
	if req.BreakGapMinutes != nil {
		salon.BreakGapMinutes = *req.BreakGapMinutes
	}

	if salon.DayStartHour < 0 || salon.DayEndHour > 24 ||
		salon.DayStartHour >= salon.DayEndHour ||
		salon.SlotStepMinutes <= 0 || salon.SlotStepMinutes > 120 {
		httperr.BadRequest(c, "invalid_grid_config", "Day grid configuration is inconsistent.")
		return
	}

	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "Minimum advance must be zero or positive (minutes).")
			return
		}
		salon.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}
	if req.AllowOverlap != nil {
		salon.AllowOverlap = *req.AllowOverlap
	}

	if err := h.db.Save(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_update_salon", "Failed to save salon settings.")
		return
	}

	c.JSON(http.StatusOK, salon)
}
