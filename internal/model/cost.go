// internal/model/cost.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CostType string

const (
	CostActual CostType = "actual"
	CostBudget CostType = "budget"
)

func (t CostType) Valid() bool {
	return t == CostActual || t == CostBudget
}

// Cost is a financial entry attributed to a lab and optionally a project.
// Amount is fixed-point NUMERIC(15,2).
type Cost struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	LabID       uint            `gorm:"not null" json:"lab_id"`
	ProjectID   *uint           `json:"project_id"`
	CostDate    Date            `gorm:"type:date;not null" json:"cost_date"`
	Amount      decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"amount"`
	CostType    CostType        `gorm:"type:varchar(20);not null" json:"cost_type"`
	Category    string          `gorm:"size:50" json:"category"`
	Description string          `gorm:"type:text" json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Lab     Lab      `gorm:"foreignKey:LabID;constraint:OnDelete:RESTRICT" json:"-"`
	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:RESTRICT" json:"-"`
}
