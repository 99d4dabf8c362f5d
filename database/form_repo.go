package database

import (
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type ServiceRequestRepo struct {
	*Store[models.ServiceRequest]
}

func NewServiceRequestRepo(db *gorm.DB) *ServiceRequestRepo {
	return &ServiceRequestRepo{NewStore[models.ServiceRequest](db)}
}

type ContactMessageRepo struct {
	*Store[models.ContactMessage]
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{NewStore[models.ContactMessage](db)}
}
