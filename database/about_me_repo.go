package database

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type AboutMeRepo struct {
	*Store[models.AboutMe]
}

func NewAboutMeRepo(db *gorm.DB) *AboutMeRepo {
	return &AboutMeRepo{NewStore[models.AboutMe](db)}
}

// Current returns the singleton row, or gorm.ErrRecordNotFound when none has
// been created yet.
func (r *AboutMeRepo) Current(ctx context.Context) (*models.AboutMe, error) {
	return r.FindByID(ctx, models.AboutMeID)
}

func (r *AboutMeRepo) Exists(ctx context.Context) (bool, error) {
	n, err := r.Count(ctx)
	return n > 0, err
}

// Add creates the singleton. A second creation fails with
// models.ErrAboutMeExists, enforced by the primary key rather than a
// read-then-write check.
func (r *AboutMeRepo) Add(ctx context.Context, about *models.AboutMe) error {
	err := r.Store.Add(ctx, about)
	if isDuplicate(err) {
		return models.ErrAboutMeExists
	}
	return err
}

func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint failed")
}
