// internal/model/support_relation.go
package model

// LabSupportRelation is the denormalized running total of support hours one
// lab has given another. At most one row exists per ordered
// (supporting, supported) pair. Rows are never authored directly; they are
// maintained inside the transaction that creates a support activity.
// LastActivityDate holds the date of the most recently *recorded* activity,
// which is not necessarily the maximum date under retroactive entry.
type LabSupportRelation struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	SupportingLabID  uint    `gorm:"not null;uniqueIndex:idx_lab_support_pair" json:"supporting_lab_id"`
	SupportedLabID   uint    `gorm:"not null;uniqueIndex:idx_lab_support_pair" json:"supported_lab_id"`
	TotalHours       float64 `gorm:"not null;default:0" json:"total_hours"`
	LastActivityDate Date    `gorm:"type:date" json:"last_activity_date"`

	SupportingLab Lab `gorm:"foreignKey:SupportingLabID;constraint:OnDelete:RESTRICT" json:"-"`
	SupportedLab  Lab `gorm:"foreignKey:SupportedLabID;constraint:OnDelete:RESTRICT" json:"-"`
}
