// internal/service/cost.go
package service

import (
	"context"

	"github.com/futurelabs/labtrack/internal/model"
	"github.com/futurelabs/labtrack/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// CostService records financial entries. Like activities, costs are an
// immutable ledger: create and filtered read only.
type CostService struct {
	repo     *repository.CostRepository
	validate *validator.Validate
}

func NewCostService(repo *repository.CostRepository) *CostService {
	return &CostService{
		repo:     repo,
		validate: newValidator(),
	}
}

type CreateCostInput struct {
	LabID       uint    `json:"lab_id" validate:"required"`
	ProjectID   *uint   `json:"project_id"`
	CostDate    string  `json:"cost_date" validate:"required,datetime=2006-01-02"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	CostType    string  `json:"cost_type" validate:"required,oneof=actual budget"`
	Category    string  `json:"category" validate:"omitempty,max=50"`
	Description string  `json:"description"`
}

func (s *CostService) Create(ctx context.Context, input CreateCostInput) (*model.Cost, error) {
	if err := asValidationError(s.validate.Struct(input)); err != nil {
		return nil, err
	}

	cost := &model.Cost{
		LabID:       input.LabID,
		ProjectID:   input.ProjectID,
		CostDate:    model.Date(input.CostDate),
		Amount:      decimal.NewFromFloat(input.Amount).Round(2),
		CostType:    model.CostType(input.CostType),
		Category:    input.Category,
		Description: input.Description,
	}

	if err := s.repo.Create(ctx, cost); err != nil {
		return nil, err
	}
	return cost, nil
}

func (s *CostService) List(ctx context.Context, filter repository.CostFilter) ([]*model.Cost, error) {
	return s.repo.FindAll(ctx, filter)
}
