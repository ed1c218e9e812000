// internal/model/personnel.go
package model

import "time"

// Personnel is an individual contributor, possibly belonging to several labs.
type Personnel struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID string    `gorm:"size:20;uniqueIndex;not null" json:"employee_id"`
	Name       string    `gorm:"size:50;not null" json:"name"`
	Email      string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	MSTeamsID  *string   `gorm:"size:100" json:"ms_teams_id"`
	Position   *string   `gorm:"size:50" json:"position"`
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`

	Labs []Lab `gorm:"many2many:personnel_labs" json:"-"`
}

func (Personnel) TableName() string { return "personnel" }
