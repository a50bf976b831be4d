package models

import "time"

type Salon struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Slug     string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone    string `gorm:"size:20" json:"phone"`
	Address  string `gorm:"size:255" json:"address"`
	Timezone string `gorm:"size:50" json:"timezone"`

	// Day-grid configuration for the calendar views.
	DayStartHour    int `gorm:"default:8" json:"day_start_hour"`
	DayEndHour      int `gorm:"default:20" json:"day_end_hour"`
	SlotStepMinutes int `gorm:"default:30" json:"slot_step_minutes"`
	WorkEndHour     int `gorm:"default:18" json:"work_end_hour"`
	BreakGapMinutes int `gorm:"default:15" json:"break_gap_minutes"`

	// Booking policy.
	MinAdvanceMinutes int  `gorm:"default:120" json:"min_advance_minutes"`
	AllowOverlap      bool `gorm:"default:false" json:"allow_overlap"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
