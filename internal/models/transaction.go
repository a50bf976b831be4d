package models

import "time"

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction is a finance ledger entry. Completed appointments post
// income entries automatically; expenses are entered by hand.
type Transaction struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `json:"salon_id"`

	Kind        string  `gorm:"size:10;not null" json:"kind"`
	Category    string  `gorm:"size:50" json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `gorm:"size:255" json:"description"`

	AppointmentID *uint `json:"appointment_id"`

	OccurredAt time.Time `json:"occurred_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
