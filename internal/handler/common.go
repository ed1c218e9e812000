package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/futurelabs/labtrack/internal/domain"
	"github.com/futurelabs/labtrack/internal/model"
	"github.com/go-chi/chi/v5"
)

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// handleError maps the domain error taxonomy onto HTTP statuses.
func handleError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	var conflictErr *domain.ConflictError
	var integrityErr *domain.IntegrityError

	switch {
	case errors.As(err, &validationErr):
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   validationErr.Error(),
			Details: validationErr.Fields,
		})
	case errors.As(err, &conflictErr):
		respondWithError(w, http.StatusConflict, conflictErr.Error())
	case errors.As(err, &integrityErr):
		respondWithError(w, http.StatusConflict, integrityErr.Error())
	case domain.IsNotFound(err):
		respondWithError(w, http.StatusNotFound, err.Error())
	default:
		slog.Error("request failed", "error", err)
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

// idParam extracts the {id} route parameter.
func idParam(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, domain.NewValidationError("id")
	}
	return uint(id), nil
}

// dateQuery reads an optional YYYY-MM-DD query parameter; empty means no
// restriction.
func dateQuery(r *http.Request, name string) (model.Date, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return "", nil
	}
	if _, err := time.Parse(time.DateOnly, raw); err != nil {
		return "", domain.NewValidationError(name)
	}
	return model.Date(raw), nil
}

// uintQuery reads an optional id query parameter. Absent means no
// restriction; a supplied value must be a positive integer, so an explicit
// zero is rejected rather than silently ignored.
func uintQuery(r *http.Request, name string) (uint, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, domain.NewValidationError(name)
	}
	return uint(id), nil
}

// labRef is the embedded lab reference used in project and personnel
// responses.
type labRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func labRefs(labs []model.Lab) []labRef {
	refs := make([]labRef, 0, len(labs))
	for _, lab := range labs {
		refs = append(refs, labRef{ID: lab.ID, Name: lab.Name})
	}
	return refs
}
