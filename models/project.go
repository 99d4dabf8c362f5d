package models

import "time"

// Project is a portfolio entry. Display order is ascending Order, ties broken
// by the most recently created first.
type Project struct {
	ID                  uint          `json:"id" gorm:"primaryKey"`
	Name                string        `json:"name" gorm:"type:varchar(255);not null" validate:"required,max=255"`
	Description         string        `json:"description" gorm:"type:text;not null" validate:"required"`
	DetailedDescription string        `json:"detailed_description" gorm:"type:text;not null;default:''"`
	Image               *string       `json:"image" gorm:"type:varchar(255)"`
	Thumbnail           *string       `json:"thumbnail" gorm:"type:varchar(255)"`
	CodeLink            string        `json:"code_link" gorm:"type:varchar(200);not null;default:''" validate:"omitempty,url"`
	DemoLink            string        `json:"demo_link" gorm:"type:varchar(200);not null;default:''" validate:"omitempty,url"`
	Status              ProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:published;index" validate:"required,choice"`
	Order               int           `json:"order" gorm:"not null;default:0"`
	IsFeatured          bool          `json:"is_featured" gorm:"not null;default:false"`
	CreatedAt           time.Time     `json:"created_at" gorm:"<-:create;autoCreateTime"`
	UpdatedAt           time.Time     `json:"updated_at" gorm:"autoUpdateTime"`

	ProjectSkills []ProjectSkill `json:"-" gorm:"foreignKey:ProjectID;references:ID"`
	Testimonials  []Testimonial  `json:"-" gorm:"foreignKey:ProjectID;references:ID"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) SetDefaults() { p.Status = ProjectPublished }

// ProjectSkill links a project to a skill. A (project, skill) pair may only
// appear once.
type ProjectSkill struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	ProjectID uint `json:"project" gorm:"not null;uniqueIndex:idx_project_skill_unique;index:idx_project_skill_project_id" validate:"required"`
	SkillID   uint `json:"skill" gorm:"not null;uniqueIndex:idx_project_skill_unique" validate:"required"`

	Project *Project `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Skill   *Skill   `json:"-" gorm:"foreignKey:SkillID;references:ID;constraint:OnDelete:CASCADE"`
}

func (ProjectSkill) TableName() string { return "project_skills" }
