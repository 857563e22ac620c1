package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimeLog struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	EmployeeID  uuid.UUID `gorm:"type:char(36);index;not null" json:"employee_id"`
	ProjectID   uuid.UUID `gorm:"type:char(36);index;not null" json:"project_id"`
	WorkDate    time.Time `gorm:"type:date;index;not null" json:"work_date"`
	Hours       float64   `gorm:"not null" json:"hours"`
	Description string    `gorm:"size:1000" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (t *TimeLog) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
