package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

var TestimonialListSpec = ListSpec{
	Filters: map[string]Filter{
		"rating":      {Column: "rating", Kind: FilterInt},
		"is_featured": {Column: "is_featured", Kind: FilterBool},
		"project":     {Column: "project_id", Kind: FilterInt},
	},
	Ordering: []string{"created_at", "rating"},
	Default:  []string{"-created_at"},
}

var withProject = Preload("Project")

type TestimonialRepo struct {
	*Store[models.Testimonial]
}

func NewTestimonialRepo(db *gorm.DB) *TestimonialRepo {
	return &TestimonialRepo{NewStore[models.Testimonial](db)}
}

func (r *TestimonialRepo) ListActive(ctx context.Context, params ListParams) ([]models.Testimonial, int64, error) {
	return r.List(ctx, Query{
		Spec:   TestimonialListSpec,
		Params: params,
		Where:  []Scope{active},
		Find:   []Scope{withProject},
	})
}

func (r *TestimonialRepo) ListFeatured(ctx context.Context) ([]models.Testimonial, error) {
	items, _, err := r.List(ctx, Query{
		Spec:  TestimonialListSpec,
		Where: []Scope{active, Where("is_featured", true)},
		Find:  []Scope{withProject},
	})
	return items, err
}

func (r *TestimonialRepo) GetActive(ctx context.Context, id uint) (*models.Testimonial, error) {
	return r.Get(ctx, id, []Scope{active}, withProject)
}
