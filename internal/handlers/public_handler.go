package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/domain/schedule"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/httperr"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/models"
	schedule "github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/usecase/schedule"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves the unauthenticated booking page: salons are
// addressed by slug, and bookings go through the same use cases as the
// dashboard with the minimum-advance window enforced.
type PublicHandler struct {
	db           *gorm.DB
	create       *schedule.CreateAppointment
	availability *schedule.GetAvailability
}

func NewPublicHandler(
	db *gorm.DB,
	create *schedule.CreateAppointment,
	availability *schedule.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		create:       create,
		availability: availability,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	StaffID     uint   `json:"staff_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	Notes       string `json:"notes"`
}

////////////////////////////////////////////////////////
// HELPERS
////////////////////////////////////////////////////////

func (h *PublicHandler) salonBySlug(c *gin.Context) (*models.Salon, bool) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return nil, false
	}

	return &salon, true
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Where("salon_id = ? AND active = true", salon.ID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salon":    salon,
		"services": services,
	})
}

////////////////////////////////////////////////////////
// STAFF
////////////////////////////////////////////////////////

func (h *PublicHandler) ListStaff(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	type staffPayload struct {
		ID       uint   `json:"id"`
		Name     string `json:"name"`
		Position string `json:"position"`
	}

	var staff []models.User
	if err := h.db.
		Where("salon_id = ? AND active = true", salon.ID).
		Order("id ASC").
		Find(&staff).Error; err != nil {

		httperr.Internal(c, "failed_to_list_staff", "Failed to list staff.")
		return
	}

	out := make([]staffPayload, 0, len(staff))
	for _, s := range staff {
		out = append(out, staffPayload{ID: s.ID, Name: s.Name, Position: s.Position})
	}

	c.JSON(http.StatusOK, gin.H{"staff": out})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	staffIDStr := c.Query("staff_id")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || staffIDStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Date, staff and service are required.")
		return
	}

	staffID, err := strconv.ParseUint(staffIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Invalid staff id.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}

	date, err := parseDateInSalon(salon, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	slots, err := h.availability.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			SalonID:   salon.ID,
			StaffID:   uint(staffID),
			ServiceID: uint(serviceID),
			Date:      date,
		},
	)
	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.BadRequest(c, "service_not_found", "Service not found.")
			return
		}

		httperr.Internal(c, "availability_failed", "Failed to compute availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	var staff models.User
	if err := h.db.
		Where("id = ? AND salon_id = ? AND active = true", req.StaffID, salon.ID).
		First(&staff).Error; err != nil {

		httperr.BadRequest(c, "staff_not_found", "Staff member not found.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), schedule.CreateAppointmentInput{
		SalonID:           salon.ID,
		StaffID:           &staff.ID,
		ClientName:        req.ClientName,
		ClientPhone:       req.ClientPhone,
		ClientEmail:       req.ClientEmail,
		ServiceID:         req.ServiceID,
		Date:              req.Date,
		Time:              req.Time,
		Notes:             req.Notes,
		EnforceMinAdvance: true,
	})
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}
