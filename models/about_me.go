package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// AboutMeID is the only primary key an AboutMe row may carry. The CHECK
// constraint on the column makes the table hold at most one row.
const AboutMeID uint = 1

var (
	ErrAboutMeExists      = errors.New("only one about me instance is allowed")
	ErrAboutMeUndeletable = errors.New("about me cannot be deleted")
)

// AboutMe is the singleton profile record.
type AboutMe struct {
	ID                uint      `json:"id" gorm:"primaryKey;autoIncrement:false;check:chk_about_me_singleton,id = 1"`
	Title             string    `json:"title" gorm:"type:varchar(255);not null;default:'About Me'" validate:"required,max=255"`
	Bio               string    `json:"bio" gorm:"type:text;not null" validate:"required"`
	DetailedBio       string    `json:"detailed_bio" gorm:"type:text;not null;default:''"`
	ProfileImage      *string   `json:"profile_image" gorm:"type:varchar(255)"`
	ResumeFile        *string   `json:"resume_file" gorm:"type:varchar(255)"`
	YearsOfExperience int       `json:"years_of_experience" gorm:"not null;default:0" validate:"min=0"`
	Email             string    `json:"email" gorm:"type:varchar(254);not null;default:''" validate:"omitempty,email,max=254"`
	Phone             string    `json:"phone" gorm:"type:varchar(20);not null;default:''" validate:"max=20"`
	Location          string    `json:"location" gorm:"type:varchar(255);not null;default:''" validate:"max=255"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (AboutMe) TableName() string { return "about_me" }

func (a *AboutMe) SetDefaults() { a.Title = "About Me" }

func (a *AboutMe) BeforeCreate(tx *gorm.DB) error {
	a.ID = AboutMeID
	if a.Title == "" {
		a.Title = "About Me"
	}
	return nil
}

func (a *AboutMe) BeforeDelete(tx *gorm.DB) error {
	return ErrAboutMeUndeletable
}
