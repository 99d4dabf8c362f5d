package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
)

type testimonialHandler struct {
	responder       Responder
	logger          zerolog.Logger
	testimonialRepo *database.TestimonialRepo
	serializer      serializer
}

func newTestimonialHandler(testimonialRepo *database.TestimonialRepo, s serializer) testimonialHandler {
	logger := log.With().Str("handlerName", "testimonialHandler").Logger()
	return testimonialHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		testimonialRepo: testimonialRepo,
		serializer:      s,
	}
}

// @Summary List testimonials
// @Description Active testimonials, filterable by rating, is_featured and project
// @Tags Testimonials
// @Produce json
// @Success 200 {array} TestimonialResponse
// @Router /api/testimonials [get]
func (h testimonialHandler) listTestimonials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := listParams(r, false, defaultPageSize)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		items, total, err := h.testimonialRepo.ListActive(r.Context(), params)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "testimonials", err))
			return
		}
		h.responder.writeList(w, r, params, total, mapSlice(items, h.serializer.testimonial))
	}
}

// @Summary Featured testimonials
// @Tags Testimonials
// @Produce json
// @Success 200 {array} TestimonialResponse
// @Router /api/testimonials/featured [get]
func (h testimonialHandler) featuredTestimonials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.testimonialRepo.ListFeatured(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "featured testimonials", err))
			return
		}
		h.responder.WriteJSON(w, mapSlice(items, h.serializer.testimonial))
	}
}

// @Summary Get testimonial
// @Tags Testimonials
// @Produce json
// @Param testimonialID path int true "Testimonial ID"
// @Success 200 {object} TestimonialResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/testimonials/{testimonialID} [get]
func (h testimonialHandler) getTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "testimonialID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		item, err := h.testimonialRepo.GetActive(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "testimonial", err))
			return
		}
		h.responder.WriteJSON(w, h.serializer.testimonial(item))
	}
}
