// internal/handler/lab.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/futurelabs/labtrack/internal/service"
)

type LabHandler struct {
	service *service.LabService
}

func NewLabHandler(service *service.LabService) *LabHandler {
	return &LabHandler{service: service}
}

// List returns all active labs.
func (h *LabHandler) List(w http.ResponseWriter, r *http.Request) {
	labs, err := h.service.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, labs)
}

func (h *LabHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateLabInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	lab, err := h.service.Create(r.Context(), input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, lab)
}

func (h *LabHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, err)
		return
	}

	var input service.UpdateLabInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	lab, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, lab)
}

func (h *LabHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "lab deleted"})
}
