// internal/model/lab.go
package model

import "time"

// Lab is an organizational unit that performs and receives work.
type Lab struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Code        string    `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
}
