package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/abisgit/pillar-backend/internal/model"
)

var ErrTemplateNotFound = errors.New("goal template not found")

type TemplateRepository interface {
	ByID(templateID string) (*model.GoalTemplate, error)
	Templates(pillar *model.Pillar) ([]*model.GoalTemplate, error)
}

type templateRepository struct {
	db *sqlx.DB
}

func NewTemplateRepository(db *sqlx.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) ByID(templateID string) (*model.GoalTemplate, error) {
	tpl := &model.GoalTemplate{}
	query := `SELECT * FROM goal_templates WHERE id = $1`

	err := r.db.Get(tpl, query, templateID)
	if err == sql.ErrNoRows {
		return nil, ErrTemplateNotFound
	}

	return tpl, err
}

func (r *templateRepository) Templates(pillar *model.Pillar) ([]*model.GoalTemplate, error) {
	var templates []*model.GoalTemplate

	query := `SELECT * FROM goal_templates ORDER BY pillar ASC, sort_order ASC`
	args := []any{}

	if pillar != nil {
		query = `SELECT * FROM goal_templates WHERE pillar = $1 ORDER BY sort_order ASC`
		args = append(args, *pillar)
	}

	err := r.db.Select(&templates, query, args...)
	if err != nil {
		return nil, err
	}

	return templates, nil
}
