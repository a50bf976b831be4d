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

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db           *gorm.DB
	create       *schedule.CreateAppointment
	cancel       *schedule.CancelAppointment
	updateStatus *schedule.UpdateStatus
	reschedule   *schedule.Reschedule
	listByDate   *schedule.ListAppointmentsByDate
	listByMonth  *schedule.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	db *gorm.DB,
	create *schedule.CreateAppointment,
	cancel *schedule.CancelAppointment,
	updateStatus *schedule.UpdateStatus,
	reschedule *schedule.Reschedule,
	listByDate *schedule.ListAppointmentsByDate,
	listByMonth *schedule.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		create:       create,
		cancel:       cancel,
		updateStatus: updateStatus,
		reschedule:   reschedule,
		listByDate:   listByDate,
		listByMonth:  listByMonth,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	StaffID     *uint  `json:"staff_id"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Type        string `json:"type"`
	Notes       string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RescheduleRequest struct {
	StaffID    *uint  `json:"staff_id"`
	ClearStaff bool   `json:"clear_staff"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

// ======================================================
// HELPERS
// ======================================================

// mapScheduleError translates business errors coming out of the
// schedule use cases into client-facing responses.
func mapScheduleError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "appointment_not_found":
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
	case "service_not_found":
		httperr.BadRequest(c, "service_not_found", "Service not found.")
	case "invalid_date_or_time":
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
	case "invalid_type":
		httperr.BadRequest(c, "invalid_type", "Unknown appointment type.")
	case "invalid_status":
		httperr.BadRequest(c, "invalid_status", "Unknown appointment status.")
	case "invalid_state":
		httperr.Conflict(c, "invalid_state", "Appointment cannot be changed in its current state.")
	case "time_conflict":
		httperr.Conflict(c, "time_conflict", "The staff member is already booked at that time.")
	case "outside_working_hours":
		httperr.BadRequest(c, "outside_working_hours", "Outside the staff member's working hours.")
	case "too_soon":
		httperr.BadRequest(c, "too_soon", "The requested time is too close or in the past.")
	case "no_free_slot":
		httperr.NotFound(c, "no_free_slot", "No free slot within the search window.")
	default:
		httperr.Internal(c, "schedule_error", "Failed to process the appointment.")
	}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return 0, false
	}
	return uint(id), true
}

// optionalStaffFilter reads ?staff_id= and returns nil when absent.
func optionalStaffFilter(c *gin.Context) (*uint, bool) {
	raw := c.Query("staff_id")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Invalid staff id.")
		return nil, false
	}
	staffID := uint(id)
	return &staffID, true
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	created, err := h.create.Execute(c.Request.Context(), schedule.CreateAppointmentInput{
		SalonID:     salonID,
		ActorID:     actorID,
		StaffID:     req.StaffID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		Type:        req.Type,
		Notes:       req.Notes,
	})
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	httpresp.Created(c, created)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
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

	items, err := h.listByDate.Execute(c.Request.Context(), salonID, staffID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	staffID, ok := optionalStaffFilter(c)
	if !ok {
		return
	}

	items, err := h.listByMonth.Execute(c.Request.Context(), salonID, staffID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	ap, err := h.updateStatus.Execute(
		c.Request.Context(),
		salonID,
		actorID,
		id,
		domain.Status(req.Status),
	)
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), salonID, actorID, id)
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), schedule.RescheduleInput{
		SalonID:       salonID,
		ActorID:       actorID,
		AppointmentID: id,
		StaffID:       req.StaffID,
		ClearStaff:    req.ClearStaff,
		Date:          req.Date,
		Time:          req.Time,
	})
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
