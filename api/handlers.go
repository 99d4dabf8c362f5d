package api

import (
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, notifier formNotifier, media services.MediaStore, cfg config.Config) *routeHandlers {
	s := serializer{media: media}
	return &routeHandlers{
		projectHandler:     newProjectHandler(database.ProjectRepo(), s),
		skillHandler:       newSkillHandler(database.SkillRepo(), s),
		testimonialHandler: newTestimonialHandler(database.TestimonialRepo(), s),
		profileHandler:     newProfileHandler(database.SocialLinkRepo(), database.AboutMeRepo(), s),
		formHandler:        newFormHandler(database.ServiceRequestRepo(), database.ContactMessageRepo(), notifier, s),
		adminAuthHandler:   newAdminAuthHandler(cfg.Admin),
		adminIndexHandler: adminIndexHandler{
			responder: NewResponder(log.With().Str("handlerName", "adminIndexHandler").Logger()),
			resources: adminResources(database, s),
		},
		mediaHandler: newMediaHandler(media, cfg.Media.MaxUploadMB),
	}
}
