package models

import "time"

type WorkingHours struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	StaffID uint `gorm:"uniqueIndex:idx_working_hours_staff_weekday,priority:1" json:"staff_id"`

	// Weekday follows time.Weekday: 0 = Sunday.
	Weekday int `gorm:"uniqueIndex:idx_working_hours_staff_weekday,priority:2" json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
