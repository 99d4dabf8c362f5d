package models

import "time"

// ServiceRequest is a public service enquiry. Rows are created by the
// submission form and afterwards only touched by an operator.
type ServiceRequest struct {
	ID                  uint          `json:"id" gorm:"primaryKey"`
	ServiceType         ServiceType   `json:"service_type" gorm:"type:varchar(20);not null" validate:"required,choice"`
	FullName            string        `json:"full_name" gorm:"type:varchar(255);not null" validate:"required,max=255"`
	Email               string        `json:"email" gorm:"type:varchar(254);not null;index" validate:"required,email,max=254"`
	ProjectRequirements string        `json:"project_requirements" gorm:"type:text;not null" validate:"required"`
	PreferredTimeline   Timeline      `json:"preferred_timeline" gorm:"type:varchar(20);not null;default:''" validate:"omitempty,choice"`
	BudgetRange         BudgetRange   `json:"budget_range" gorm:"type:varchar(50);not null;default:''" validate:"omitempty,choice"`
	AgreeToTerms        bool          `json:"agree_to_terms" gorm:"not null;default:false"`
	Status              RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:pending;index" validate:"required,choice"`
	SubmittedAt         time.Time     `json:"submitted_at" gorm:"<-:create;autoCreateTime;index"`
	UpdatedAt           time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

func (ServiceRequest) TableName() string { return "service_requests" }

func (r *ServiceRequest) SetDefaults() { r.Status = RequestPending }

// ContactMessage is a message left through the public contact form.
type ContactMessage struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	FullName    string        `json:"full_name" gorm:"type:varchar(255);not null" validate:"required,max=255"`
	Email       string        `json:"email" gorm:"type:varchar(254);not null;index" validate:"required,email,max=254"`
	Subject     string        `json:"subject" gorm:"type:varchar(255);not null" validate:"required,max=255"`
	Message     string        `json:"message" gorm:"type:text;not null" validate:"required"`
	Status      MessageStatus `json:"status" gorm:"type:varchar(20);not null;default:new;index" validate:"required,choice"`
	SubmittedAt time.Time     `json:"submitted_at" gorm:"<-:create;autoCreateTime;index"`
	UpdatedAt   time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

func (ContactMessage) TableName() string { return "contact_messages" }

func (m *ContactMessage) SetDefaults() { m.Status = MessageNew }
