package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/abisgit/pillar-backend/internal/model"
	"github.com/abisgit/pillar-backend/internal/repository"
	"github.com/abisgit/pillar-backend/internal/service"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps domain errors onto HTTP statuses: validation
// failures 400, missing resources 404, foreign goals 403, lost toggle races
// 409. Anything unrecognized is a 500 and gets logged.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrUnknownPillar),
		errors.Is(err, model.ErrUnknownHorizon):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrGoalNotFound),
		errors.Is(err, repository.ErrTemplateNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotGoalOwner):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, repository.ErrToggleConflict),
		errors.Is(err, service.ErrDuplicateAdoption):
		respondError(w, http.StatusConflict, err.Error())
	default:
		slog.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
