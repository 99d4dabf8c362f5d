package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupPublicRoutes mounts the read API and the two form endpoints.
func setupPublicRoutes(r chi.Router, handlers *routeHandlers) {
	r.Route("/api", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", handlers.projectHandler.listProjects())
			r.Get("/featured", handlers.projectHandler.featuredProjects())
			r.Get("/{projectID}", handlers.projectHandler.getProject())
		})

		r.Route("/skills", func(r chi.Router) {
			r.Get("/", handlers.skillHandler.listSkills())
			r.Get("/by-category", handlers.skillHandler.skillsByCategory())
			r.Get("/by_category", handlers.skillHandler.skillsByCategory())
			r.Get("/{skillID}", handlers.skillHandler.getSkill())
		})

		r.Route("/testimonials", func(r chi.Router) {
			r.Get("/", handlers.testimonialHandler.listTestimonials())
			r.Get("/featured", handlers.testimonialHandler.featuredTestimonials())
			r.Get("/{testimonialID}", handlers.testimonialHandler.getTestimonial())
		})

		r.Route("/social-links", func(r chi.Router) {
			r.Get("/", handlers.profileHandler.listSocialLinks())
			r.Get("/{linkID}", handlers.profileHandler.getSocialLink())
		})

		r.Route("/about-me", func(r chi.Router) {
			r.Get("/", handlers.profileHandler.listAboutMe())
			r.Get("/info", handlers.profileHandler.aboutMeInfo())
			r.Get("/{aboutID}", handlers.profileHandler.getAboutMe())
		})

		r.Post("/service-request", handlers.formHandler.submitServiceRequest())
		r.Post("/contact-message", handlers.formHandler.submitContactMessage())
	})
}

// setupAdminRoutes mounts the operator console. Everything except login
// requires a bearer token.
func setupAdminRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", handlers.adminAuthHandler.login())

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)
			r.Post("/media", handlers.mediaHandler.upload())
			handlers.adminIndexHandler.mount(r)
		})
	})
}

// health
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func health(startupTime time.Time) http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "health").Logger())
	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, HealthResponse{
			Status:    "ok",
			StartedAt: startupTime.UTC().Format(time.RFC3339),
			Uptime:    time.Since(startupTime).Round(time.Second).String(),
		})
	}
}
