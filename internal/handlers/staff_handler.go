package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/httperr"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/middleware"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/models"
)

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

// --------- Requests ---------

type CreateStaffRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
}

type UpdateStaffRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Position *string `json:"position,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *StaffHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var staff []models.User
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("id ASC").
		Find(&staff).Error; err != nil {

		httperr.Internal(c, "failed_to_list_staff", "Failed to list staff.")
		return
	}

	c.JSON(http.StatusOK, staff)
}

func (h *StaffHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "A user with this email already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Failed to create staff member.")
		return
	}

	member := models.User{
		SalonID:      salonID,
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         "staff",
		Position:     req.Position,
		Active:       true,
	}

	if err := h.db.Create(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_create_staff", "Failed to create staff member.")
		return
	}

	c.JSON(http.StatusCreated, member)
}

func (h *StaffHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	var member models.User
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&member).Error; err != nil {

		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Position != nil {
		member.Position = *req.Position
	}
	if req.Active != nil {
		if member.Role == "owner" && !*req.Active {
			httperr.BadRequest(c, "cannot_deactivate_owner", "The owner account cannot be deactivated.")
			return
		}
		member.Active = *req.Active
	}

	if err := h.db.Save(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_update_staff", "Failed to update staff member.")
		return
	}

	c.JSON(http.StatusOK, member)
}
