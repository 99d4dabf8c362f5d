package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

var SkillListSpec = ListSpec{
	Filters: map[string]Filter{
		"category":  {Column: "category", Kind: FilterString},
		"is_active": {Column: "is_active", Kind: FilterBool},
	},
	Ordering: []string{"order", "name", "proficiency"},
	Default:  []string{"order", "name"},
}

var active = Where("is_active", true)

type SkillRepo struct {
	*Store[models.Skill]
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{NewStore[models.Skill](db)}
}

func (r *SkillRepo) ListActive(ctx context.Context, params ListParams) ([]models.Skill, int64, error) {
	return r.List(ctx, Query{Spec: SkillListSpec, Params: params, Where: []Scope{active}})
}

// AllActive returns every active skill in default display order, ignoring
// request filters. Used for the grouped-by-category view.
func (r *SkillRepo) AllActive(ctx context.Context) ([]models.Skill, error) {
	skills, _, err := r.List(ctx, Query{Spec: SkillListSpec, Where: []Scope{active}})
	return skills, err
}

func (r *SkillRepo) GetActive(ctx context.Context, id uint) (*models.Skill, error) {
	return r.Get(ctx, id, []Scope{active})
}
