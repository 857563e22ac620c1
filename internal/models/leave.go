package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

func ParseLeaveStatus(value string) (LeaveStatus, bool) {
	status := LeaveStatus(strings.ToLower(strings.TrimSpace(value)))
	switch status {
	case LeavePending, LeaveApproved, LeaveRejected:
		return status, true
	}
	return "", false
}

type LeaveRequest struct {
	ID         uuid.UUID   `gorm:"type:char(36);primaryKey" json:"id"`
	EmployeeID uuid.UUID   `gorm:"type:char(36);index;not null" json:"employee_id"`
	Reason     string      `gorm:"size:255;not null" json:"reason"`
	Status     LeaveStatus `gorm:"size:50;not null;default:pending" json:"status"`
	StartDate  time.Time   `gorm:"type:date;index;not null" json:"start_date"`
	EndDate    time.Time   `gorm:"type:date;not null" json:"end_date"`
	CreatedAt  time.Time   `json:"created_at"`
}

func (r *LeaveRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
