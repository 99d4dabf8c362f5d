package models

type SocialLink struct {
	ID       uint     `json:"id" gorm:"primaryKey"`
	Platform Platform `json:"platform" gorm:"type:varchar(20);not null" validate:"required,choice"`
	URL      string   `json:"url" gorm:"type:varchar(200);not null" validate:"required,url"`
	Icon     string   `json:"icon" gorm:"type:varchar(50);not null;default:''" validate:"max=50"`
	Order    int      `json:"order" gorm:"not null;default:0"`
	IsActive bool     `json:"is_active" gorm:"not null"`
}

func (SocialLink) TableName() string { return "social_links" }

func (l *SocialLink) SetDefaults() { l.IsActive = true }
