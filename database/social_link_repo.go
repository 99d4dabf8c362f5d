package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

var SocialLinkListSpec = ListSpec{
	Ordering: []string{"order", "platform"},
	Default:  []string{"order"},
}

type SocialLinkRepo struct {
	*Store[models.SocialLink]
}

func NewSocialLinkRepo(db *gorm.DB) *SocialLinkRepo {
	return &SocialLinkRepo{NewStore[models.SocialLink](db)}
}

func (r *SocialLinkRepo) ListActive(ctx context.Context, params ListParams) ([]models.SocialLink, int64, error) {
	return r.List(ctx, Query{Spec: SocialLinkListSpec, Params: params, Where: []Scope{active}})
}

func (r *SocialLinkRepo) GetActive(ctx context.Context, id uint) (*models.SocialLink, error) {
	return r.Get(ctx, id, []Scope{active})
}
