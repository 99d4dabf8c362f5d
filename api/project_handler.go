package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	serializer  serializer
}

func newProjectHandler(projectRepo *database.ProjectRepo, s serializer) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		serializer:  s,
	}
}

// listProjects returns published projects with their skills
// @Summary List projects
// @Description Published projects, filterable by is_featured and status, searchable over name and description
// @Tags Projects
// @Produce json
// @Param search query string false "Free-text search"
// @Param ordering query string false "order, created_at or name, prefixed with - for descending"
// @Success 200 {array} ProjectListItem
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid filter value"
// @Router /api/projects [get]
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := listParams(r, false, defaultPageSize)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		projects, total, err := h.projectRepo.ListPublished(r.Context(), params)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "projects", err))
			return
		}

		h.responder.writeList(w, r, params, total, mapSlice(projects, h.serializer.projectListItem))
	}
}

// featuredProjects returns published featured projects in display order
// @Summary Featured projects
// @Tags Projects
// @Produce json
// @Success 200 {array} ProjectResponse
// @Router /api/projects/featured [get]
func (h projectHandler) featuredProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.ListFeatured(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "featured projects", err))
			return
		}

		ids := make([]uint, len(projects))
		for i, p := range projects {
			ids[i] = p.ID
		}
		counts, err := h.projectRepo.ActiveTestimonialCounts(r.Context(), ids)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "testimonials", err))
			return
		}

		h.responder.WriteJSON(w, mapSlice(projects, func(p *models.Project) ProjectResponse {
			return h.serializer.project(p, counts[p.ID])
		}))
	}
}

// getProject returns a published project with its skills and testimonial count
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} ProjectResponse
// @Failure 404 {object} ErrorResponse "Not Found - Project not found or not published"
// @Router /api/projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := idParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.GetPublished(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		count, err := h.projectRepo.CountActiveTestimonials(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "testimonials", err))
			return
		}

		h.responder.WriteJSON(w, h.serializer.project(project, count))
	}
}
