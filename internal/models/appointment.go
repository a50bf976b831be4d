package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID uint  `json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"salon"`

	// StaffID is NULL while the booking waits in the unassigned
	// pseudo-column of the day grid.
	StaffID *uint `json:"staff_id"`
	Staff   *User `gorm:"foreignKey:StaffID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff,omitempty"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`
	Type   string `gorm:"size:20;default:'standard'" json:"type"`

	// Price is snapshotted from the service at booking time.
	Price float64 `json:"price"`
	Notes string  `gorm:"size:255" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
