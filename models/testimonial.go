package models

import "time"

// Testimonial is a client quote, optionally tied to a project. Deleting the
// project clears the reference and keeps the testimonial.
type Testimonial struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ClientName     string    `json:"client_name" gorm:"type:varchar(255);not null" validate:"required,max=255"`
	ClientPosition string    `json:"client_position" gorm:"type:varchar(255);not null;default:''" validate:"max=255"`
	ClientCompany  string    `json:"client_company" gorm:"type:varchar(255);not null;default:''" validate:"max=255"`
	ClientImage    *string   `json:"client_image" gorm:"type:varchar(255)"`
	Testimonial    string    `json:"testimonial" gorm:"type:text;not null" validate:"required"`
	Rating         int       `json:"rating" gorm:"not null;check:chk_testimonials_rating,rating >= 1 AND rating <= 5" validate:"min=1,max=5"`
	ProjectID      *uint     `json:"project" gorm:"index"`
	IsFeatured     bool      `json:"is_featured" gorm:"not null;default:false"`
	IsActive       bool      `json:"is_active" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"<-:create;autoCreateTime"`

	Project *Project `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:SET NULL"`
}

func (Testimonial) TableName() string { return "testimonials" }

func (t *Testimonial) SetDefaults() {
	t.Rating = 5
	t.IsActive = true
}
