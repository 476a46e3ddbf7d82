package service

import (
	"github.com/abisgit/pillar-backend/internal/model"
	"github.com/abisgit/pillar-backend/internal/repository"
)

// TemplateService reads the seeded routine catalog.
type TemplateService struct {
	repo repository.TemplateRepository
}

func NewTemplateService(repo repository.TemplateRepository) *TemplateService {
	return &TemplateService{repo: repo}
}

func (s *TemplateService) Templates(pillar *model.Pillar) ([]*model.GoalTemplate, error) {
	return s.repo.Templates(pillar)
}

func (s *TemplateService) ByID(templateID string) (*model.GoalTemplate, error) {
	return s.repo.ByID(templateID)
}
