// internal/handler/personnel.go
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/futurelabs/labtrack/internal/model"
	"github.com/futurelabs/labtrack/internal/service"
)

type PersonnelHandler struct {
	service *service.PersonnelService
}

func NewPersonnelHandler(service *service.PersonnelService) *PersonnelHandler {
	return &PersonnelHandler{service: service}
}

type personnelResponse struct {
	ID         uint      `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	MSTeamsID  *string   `json:"ms_teams_id"`
	Position   *string   `json:"position"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	Labs       []labRef  `json:"labs"`
}

func toPersonnelResponse(person *model.Personnel) personnelResponse {
	return personnelResponse{
		ID:         person.ID,
		EmployeeID: person.EmployeeID,
		Name:       person.Name,
		Email:      person.Email,
		MSTeamsID:  person.MSTeamsID,
		Position:   person.Position,
		IsActive:   person.IsActive,
		CreatedAt:  person.CreatedAt,
		Labs:       labRefs(person.Labs),
	}
}

// List returns all active personnel with lab memberships resolved.
func (h *PersonnelHandler) List(w http.ResponseWriter, r *http.Request) {
	people, err := h.service.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	resp := make([]personnelResponse, 0, len(people))
	for _, person := range people {
		resp = append(resp, toPersonnelResponse(person))
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *PersonnelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreatePersonnelInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	person, err := h.service.Create(r.Context(), input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, toPersonnelResponse(person))
}

func (h *PersonnelHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, err)
		return
	}

	var input service.UpdatePersonnelInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	person, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toPersonnelResponse(person))
}

func (h *PersonnelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "personnel deleted"})
}
