package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// ParseRole maps free-form input onto the closed role set.
func ParseRole(value string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	if role == "" {
		return RoleEmployee, true
	}
	switch role {
	case RoleAdmin, RoleManager, RoleEmployee:
		return role, true
	}
	return "", false
}

type Employee struct {
	ID           uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	Email        string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	FullName     string     `gorm:"size:255;not null" json:"full_name"`
	Title        string     `gorm:"size:100;not null;default:Employee" json:"title"`
	Department   string     `gorm:"size:100;not null;default:General" json:"department"`
	Role         Role       `gorm:"size:50;not null;default:employee" json:"role"`
	ManagerID    *uuid.UUID `gorm:"type:char(36);index" json:"manager_id"`
	JoinedOn     time.Time  `gorm:"type:date;not null" json:"joined_on"`
	IsActive     bool       `gorm:"not null" json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
