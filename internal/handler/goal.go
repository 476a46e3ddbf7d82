package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/abisgit/pillar-backend/internal/ctxkeys"
	"github.com/abisgit/pillar-backend/internal/model"
	"github.com/abisgit/pillar-backend/internal/service"
	"github.com/abisgit/pillar-backend/internal/validation"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// List returns the caller's goals in insertion order, optionally filtered by
// the pillar query parameter.
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var pillar *model.Pillar
	if raw := r.URL.Query().Get("pillar"); raw != "" {
		p, err := model.ParsePillar(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		pillar = &p
	}

	goals, err := h.goalService.Goals(user.ID, pillar)
	if err != nil {
		slog.Error("failed to list goals", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to load goals")
		return
	}

	if goals == nil {
		goals = []*model.Goal{}
	}

	respondJSON(w, http.StatusOK, goals)
}

type createGoalRequest struct {
	TemplateID  string `json:"templateId"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Horizon     string `json:"horizon"`
	Description string `json:"description"`
}

// Create makes a new goal, either from scratch or by adopting a catalog
// template when templateId is set.
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.TemplateID != "" {
		goal, err := h.goalService.Adopt(user.ID, req.TemplateID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, goal)
		return
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	pillar, err := model.ParsePillar(req.Category)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	horizon, err := model.ParseHorizon(req.Horizon)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	goal, err := h.goalService.Create(user.ID, req.Title, req.Description, pillar, horizon)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, goal)
}

type setCompletionRequest struct {
	IsCompleted *bool `json:"isCompleted"`
}

// SetCompletion toggles a goal's completion state. Requesting the state the
// goal is already in succeeds without writing anything.
func (h *GoalHandler) SetCompletion(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	var req setCompletionRequest
	if err := decodeJSON(r, &req); err != nil || req.IsCompleted == nil {
		respondError(w, http.StatusBadRequest, "isCompleted is required")
		return
	}

	goal, err := h.goalService.SetCompletion(user.ID, goalID, *req.IsCompleted)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

type updateGoalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	var req updateGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	goal, err := h.goalService.Update(user.ID, goalID, req.Title, req.Description)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	err := h.goalService.Delete(user.ID, goalID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *GoalHandler) Export(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goals, err := h.goalService.Goals(user.ID, nil)
	if err != nil {
		slog.Error("failed to list goals for export", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to export goals")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=goals-export.json")

	err = json.NewEncoder(w).Encode(goals)
	if err != nil {
		slog.Error("failed to encode goals", "error", err, "user_id", user.ID)
	}
}
