// internal/model/activity.go
package model

import "time"

type ActivityType string

const (
	ActivityOwn     ActivityType = "own"
	ActivitySupport ActivityType = "support"
)

func (t ActivityType) Valid() bool {
	return t == ActivityOwn || t == ActivitySupport
}

// Activity is a single time entry: hours one person spent on one lab's work
// on one date. A nil ProjectID means the time is unclassified. SupportedLabID
// is only meaningful for support activities; it names the lab receiving the
// help and is not cleared if the type ever changes.
type Activity struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	PersonnelID    uint         `gorm:"not null" json:"personnel_id"`
	LabID          uint         `gorm:"not null" json:"lab_id"`
	ProjectID      *uint        `json:"project_id"`
	ActivityDate   Date         `gorm:"type:date;not null" json:"activity_date"`
	Hours          float64      `gorm:"not null" json:"hours"`
	ActivityType   ActivityType `gorm:"type:varchar(20);not null;default:'own'" json:"activity_type"`
	SupportedLabID *uint        `json:"supported_lab_id"`
	Description    string       `gorm:"type:text" json:"description"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`

	Personnel    Personnel `gorm:"foreignKey:PersonnelID;constraint:OnDelete:RESTRICT" json:"-"`
	Lab          Lab       `gorm:"foreignKey:LabID;constraint:OnDelete:RESTRICT" json:"-"`
	Project      *Project  `gorm:"foreignKey:ProjectID;constraint:OnDelete:RESTRICT" json:"-"`
	SupportedLab *Lab      `gorm:"foreignKey:SupportedLabID;constraint:OnDelete:RESTRICT" json:"-"`
}
