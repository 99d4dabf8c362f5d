package database

import (
	"gorm.io/gorm"
)

type Database struct {
	serviceRequestRepo *ServiceRequestRepo
	contactMessageRepo *ContactMessageRepo
	projectRepo        *ProjectRepo
	projectSkillRepo   *ProjectSkillRepo
	skillRepo          *SkillRepo
	testimonialRepo    *TestimonialRepo
	socialLinkRepo     *SocialLinkRepo
	aboutMeRepo        *AboutMeRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		serviceRequestRepo: NewServiceRequestRepo(db),
		contactMessageRepo: NewContactMessageRepo(db),
		projectRepo:        NewProjectRepo(db),
		projectSkillRepo:   NewProjectSkillRepo(db),
		skillRepo:          NewSkillRepo(db),
		testimonialRepo:    NewTestimonialRepo(db),
		socialLinkRepo:     NewSocialLinkRepo(db),
		aboutMeRepo:        NewAboutMeRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ServiceRequestRepo() *ServiceRequestRepo {
	return d.serviceRequestRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactMessageRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProjectSkillRepo() *ProjectSkillRepo {
	return d.projectSkillRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) TestimonialRepo() *TestimonialRepo {
	return d.testimonialRepo
}

func (d Database) SocialLinkRepo() *SocialLinkRepo {
	return d.socialLinkRepo
}

func (d Database) AboutMeRepo() *AboutMeRepo {
	return d.aboutMeRepo
}
