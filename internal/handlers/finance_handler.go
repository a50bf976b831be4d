package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/httperr"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/httpresp"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/middleware"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/models"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type FinanceHandler struct {
	db *gorm.DB
}

func NewFinanceHandler(db *gorm.DB) *FinanceHandler {
	return &FinanceHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateTransactionRequest struct {
	Kind        string  `json:"kind" binding:"required,oneof=income expense"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
	OccurredAt  string  `json:"occurred_at"` // YYYY-MM-DD, defaults to today
}

// ======================================================
// LIST
// ======================================================

func (h *FinanceHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	kind := c.Query("kind")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := (page - 1) * limit

	q := h.db.
		Model(&models.Transaction{}).
		Where("salon_id = ?", salonID)

	if kind == models.TransactionIncome || kind == models.TransactionExpense {
		q = q.Where("kind = ?", kind)
	}

	if fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("occurred_at >= ?", from)
		}
	}
	if toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("occurred_at < ?", to.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "transaction_count_failed", "Failed to count transactions.")
		return
	}

	var items []models.Transaction
	if err := q.
		Order("occurred_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error; err != nil {

		httperr.Internal(c, "transaction_list_failed", "Failed to list transactions.")
		return
	}

	httpresp.Page(c, items, page, limit, total)
}

// ======================================================
// CREATE
// ======================================================

func (h *FinanceHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.Internal(c, "salon_not_found", "Salon not found.")
		return
	}

	occurredAt := timezone.NowIn(salon.Timezone)
	if req.OccurredAt != "" {
		parsed, err := parseDateInSalon(&salon, req.OccurredAt)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		occurredAt = parsed
	}

	tr := models.Transaction{
		SalonID:     salonID,
		Kind:        req.Kind,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		OccurredAt:  occurredAt,
	}

	if err := h.db.Create(&tr).Error; err != nil {
		httperr.Internal(c, "failed_to_create_transaction", "Failed to create transaction.")
		return
	}

	httpresp.Created(c, tr)
}

// ======================================================
// MONTHLY SUMMARY
// ======================================================

type monthlySummary struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

func (h *FinanceHandler) MonthlySummary(c *gin.Context) {
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

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.Internal(c, "salon_not_found", "Salon not found.")
		return
	}

	loc := timezone.Location(salon.Timezone)
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	type row struct {
		Kind  string
		Total float64
	}
	var rows []row
	if err := h.db.
		Model(&models.Transaction{}).
		Select("kind, COALESCE(SUM(amount), 0) AS total").
		Where("salon_id = ? AND occurred_at >= ? AND occurred_at < ?", salonID, start, end).
		Group("kind").
		Scan(&rows).Error; err != nil {

		httperr.Internal(c, "summary_failed", "Failed to build the monthly summary.")
		return
	}

	summary := monthlySummary{Year: year, Month: month}
	for _, r := range rows {
		switch r.Kind {
		case models.TransactionIncome:
			summary.Income = r.Total
		case models.TransactionExpense:
			summary.Expense = r.Total
		}
	}
	summary.Net = summary.Income - summary.Expense

	httpresp.OK(c, summary)
}
