package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

// ProjectListSpec drives the public project listing.
var ProjectListSpec = ListSpec{
	Filters: map[string]Filter{
		"is_featured": {Column: "is_featured", Kind: FilterBool},
		"status":      {Column: "status", Kind: FilterString},
	},
	Search:   []string{"name", "description"},
	Ordering: []string{"order", "created_at", "name"},
	Default:  []string{"order", "-created_at"},
}

var published = Where("status", models.ProjectPublished)

func orderByID(db *gorm.DB) *gorm.DB { return db.Order("id") }

// withSkills loads each project's skill links and the linked skills.
var withSkills = []Scope{
	Preload("ProjectSkills", orderByID),
	Preload("ProjectSkills.Skill"),
}

type ProjectRepo struct {
	*Store[models.Project]
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{NewStore[models.Project](db)}
}

// ListPublished returns published projects with their skills.
func (r *ProjectRepo) ListPublished(ctx context.Context, params ListParams) ([]models.Project, int64, error) {
	return r.List(ctx, Query{
		Spec:   ProjectListSpec,
		Params: params,
		Where:  []Scope{published},
		Find:   withSkills,
	})
}

// ListFeatured returns published featured projects in default display order.
func (r *ProjectRepo) ListFeatured(ctx context.Context) ([]models.Project, error) {
	projects, _, err := r.List(ctx, Query{
		Spec:  ProjectListSpec,
		Where: []Scope{published, Where("is_featured", true)},
		Find:  withSkills,
	})
	return projects, err
}

// GetPublished returns a published project by id with its skills.
func (r *ProjectRepo) GetPublished(ctx context.Context, id uint) (*models.Project, error) {
	return r.Get(ctx, id, []Scope{published}, withSkills...)
}

// CountActiveTestimonials counts the active testimonials tied to a project.
func (r *ProjectRepo) CountActiveTestimonials(ctx context.Context, projectID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Testimonial{}).
		Where("project_id = ? AND is_active = ?", projectID, true).
		Count(&n).Error
	return n, err
}

// ActiveTestimonialCounts counts active testimonials for each of ids in one
// query. Projects without any are absent from the map.
func (r *ProjectRepo) ActiveTestimonialCounts(ctx context.Context, ids []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []struct {
		ProjectID uint
		N         int64
	}
	err := r.db.WithContext(ctx).Model(&models.Testimonial{}).
		Select("project_id, COUNT(*) AS n").
		Where("project_id IN ? AND is_active = ?", ids, true).
		Group("project_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.ProjectID] = row.N
	}
	return counts, nil
}

// Delete removes a project and its skill links. Testimonials that referenced
// it are kept with their project cleared.
func (r *ProjectRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Testimonial{}).
			Where("project_id = ?", id).
			Update("project_id", nil).Error
		if err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectSkill{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Project{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
