package handler

import (
	"log/slog"
	"net/http"

	"github.com/abisgit/pillar-backend/internal/ctxkeys"
	"github.com/abisgit/pillar-backend/internal/model"
	"github.com/abisgit/pillar-backend/internal/service"
)

type TemplateHandler struct {
	templateService *service.TemplateService
}

func NewTemplateHandler(templateService *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
	}
}

func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
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

	templates, err := h.templateService.Templates(pillar)
	if err != nil {
		slog.Error("failed to list templates", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to load templates")
		return
	}

	if templates == nil {
		templates = []*model.GoalTemplate{}
	}

	respondJSON(w, http.StatusOK, templates)
}
