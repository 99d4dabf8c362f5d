package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type ProjectSkillRepo struct {
	*Store[models.ProjectSkill]
}

func NewProjectSkillRepo(db *gorm.DB) *ProjectSkillRepo {
	return &ProjectSkillRepo{NewStore[models.ProjectSkill](db)}
}

// Link attaches a skill to a project. Linking the same pair twice fails with
// a duplicate key error.
func (r *ProjectSkillRepo) Link(ctx context.Context, projectID, skillID uint) (*models.ProjectSkill, error) {
	link := &models.ProjectSkill{ProjectID: projectID, SkillID: skillID}
	if err := r.Add(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// ForProject returns the links of a project with their skills loaded.
func (r *ProjectSkillRepo) ForProject(ctx context.Context, projectID uint) ([]models.ProjectSkill, error) {
	var links []models.ProjectSkill
	err := r.db.WithContext(ctx).
		Preload("Skill").
		Where("project_id = ?", projectID).
		Order("id").
		Find(&links).Error
	return links, err
}
