package models

// Skill is a technology or discipline shown on the portfolio. Inactive skills
// are hidden from public listings.
type Skill struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Name        string        `json:"name" gorm:"type:varchar(100);not null;uniqueIndex" validate:"required,max=100"`
	Category    SkillCategory `json:"category" gorm:"type:varchar(20);not null;index" validate:"required,choice"`
	Proficiency int           `json:"proficiency" gorm:"not null;check:chk_skills_proficiency,proficiency >= 0 AND proficiency <= 100" validate:"min=0,max=100"`
	Icon        string        `json:"icon" gorm:"type:varchar(50);not null;default:''" validate:"max=50"`
	Order       int           `json:"order" gorm:"not null;default:0"`
	IsActive    bool          `json:"is_active" gorm:"not null"`
}

func (Skill) TableName() string { return "skills" }

func (s *Skill) SetDefaults() {
	s.Proficiency = 50
	s.IsActive = true
}
