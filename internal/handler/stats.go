package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/abisgit/pillar-backend/internal/ctxkeys"
	"github.com/abisgit/pillar-backend/internal/service"
)

type StatsHandler struct {
	consistency *service.ConsistencyService
	balance     *service.BalanceService
}

func NewStatsHandler(consistency *service.ConsistencyService, balance *service.BalanceService) *StatsHandler {
	return &StatsHandler{
		consistency: consistency,
		balance:     balance,
	}
}

// Consistency serves the contribution graph: one point per day over the
// trailing window, ascending, zero-filled.
func (h *StatsHandler) Consistency(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	window := service.DefaultWindowDays
	if raw := r.URL.Query().Get("window"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "window must be a positive integer")
			return
		}
		window = n
	}

	points, err := h.consistency.Graph(user.ID, window)
	if err != nil {
		slog.Error("failed to build consistency graph", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to load consistency graph")
		return
	}

	respondJSON(w, http.StatusOK, points)
}

func (h *StatsHandler) Streaks(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	streaks, err := h.consistency.StreaksFor(user.ID)
	if err != nil {
		slog.Error("failed to derive streaks", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to load streaks")
		return
	}

	respondJSON(w, http.StatusOK, streaks)
}

func (h *StatsHandler) BalanceScore(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	score, err := h.balance.Score(user.ID)
	if err != nil {
		slog.Error("failed to compute balance score", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to load balance score")
		return
	}

	respondJSON(w, http.StatusOK, score)
}
