package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance keeps a single row per employee per work date.
type Attendance struct {
	ID         uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	EmployeeID uuid.UUID  `gorm:"type:char(36);not null;uniqueIndex:uniq_attendance_day" json:"employee_id"`
	WorkDate   time.Time  `gorm:"type:date;not null;uniqueIndex:uniq_attendance_day" json:"work_date"`
	Status     string     `gorm:"size:30;not null;default:present" json:"status"`
	CheckIn    *time.Time `json:"check_in"`
	CheckOut   *time.Time `json:"check_out"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
