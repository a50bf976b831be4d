package dto

import "time"

type AppointmentListDTO struct {
	ID          uint      `json:"id"`
	StaffID     *uint     `json:"staff_id"`
	StaffName   string    `json:"staff_name,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	Type        string    `json:"type"`
	ClientName  string    `json:"client_name"`
	ServiceName string    `json:"service_name"`
	Price       float64   `json:"price"`
}
