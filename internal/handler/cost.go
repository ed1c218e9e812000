// internal/handler/cost.go
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/futurelabs/labtrack/internal/model"
	"github.com/futurelabs/labtrack/internal/repository"
	"github.com/futurelabs/labtrack/internal/service"
)

type CostHandler struct {
	service *service.CostService
}

func NewCostHandler(service *service.CostService) *CostHandler {
	return &CostHandler{service: service}
}

// costResponse emits the fixed-point amount as a JSON number.
type costResponse struct {
	ID          uint           `json:"id"`
	LabID       uint           `json:"lab_id"`
	ProjectID   *uint          `json:"project_id"`
	CostDate    model.Date     `json:"cost_date"`
	Amount      float64        `json:"amount"`
	CostType    model.CostType `json:"cost_type"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func toCostResponse(cost *model.Cost) costResponse {
	return costResponse{
		ID:          cost.ID,
		LabID:       cost.LabID,
		ProjectID:   cost.ProjectID,
		CostDate:    cost.CostDate,
		Amount:      cost.Amount.InexactFloat64(),
		CostType:    cost.CostType,
		Category:    cost.Category,
		Description: cost.Description,
		CreatedAt:   cost.CreatedAt,
		UpdatedAt:   cost.UpdatedAt,
	}
}

// List returns costs filtered by any combination of lab_id, project_id,
// start_date and end_date.
func (h *CostHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter repository.CostFilter
	var err error

	if filter.LabID, err = uintQuery(r, "lab_id"); err != nil {
		handleError(w, err)
		return
	}
	if filter.ProjectID, err = uintQuery(r, "project_id"); err != nil {
		handleError(w, err)
		return
	}
	if filter.StartDate, err = dateQuery(r, "start_date"); err != nil {
		handleError(w, err)
		return
	}
	if filter.EndDate, err = dateQuery(r, "end_date"); err != nil {
		handleError(w, err)
		return
	}

	costs, err := h.service.List(r.Context(), filter)
	if err != nil {
		handleError(w, err)
		return
	}

	resp := make([]costResponse, 0, len(costs))
	for _, cost := range costs {
		resp = append(resp, toCostResponse(cost))
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *CostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateCostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	cost, err := h.service.Create(r.Context(), input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, toCostResponse(cost))
}
