package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID          uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	Code        string     `gorm:"uniqueIndex;size:40;not null" json:"code"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Description string     `gorm:"size:600" json:"description"`
	Status      string     `gorm:"size:50;not null;default:active" json:"status"`
	StartDate   time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate     *time.Time `gorm:"type:date" json:"end_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ProjectMember assigns an employee to a project at most once.
type ProjectMember struct {
	ID                uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	ProjectID         uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_project_member" json:"project_id"`
	EmployeeID        uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_project_member" json:"employee_id"`
	AllocationPercent int       `gorm:"not null;default:100" json:"allocation_percent"`
	CreatedAt         time.Time `json:"created_at"`
}

func (m *ProjectMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
