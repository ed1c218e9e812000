// internal/model/project.go
package model

import "time"

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectSuspended ProjectStatus = "suspended"
	ProjectUnknown   ProjectStatus = "unknown"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectActive, ProjectCompleted, ProjectSuspended, ProjectUnknown:
		return true
	}
	return false
}

// Project is a tracked initiative. Exactly one lead lab is responsible for
// it; any number of labs participate through the project_labs join table.
// The lead lab is not required to be part of the participating set.
type Project struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Code        string        `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Name        string        `gorm:"size:100;not null" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	StartDate   *Date         `gorm:"type:date" json:"start_date"`
	EndDate     *Date         `gorm:"type:date" json:"end_date"`
	Status      ProjectStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	LeadLabID   uint          `gorm:"not null" json:"lead_lab_id"`

	LeadLab Lab   `gorm:"foreignKey:LeadLabID;constraint:OnDelete:RESTRICT" json:"-"`
	Labs    []Lab `gorm:"many2many:project_labs" json:"-"`
}
