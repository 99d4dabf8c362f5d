package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
)

// profileHandler serves the social links and the about-me record.
type profileHandler struct {
	responder      Responder
	logger         zerolog.Logger
	socialLinkRepo *database.SocialLinkRepo
	aboutMeRepo    *database.AboutMeRepo
	serializer     serializer
}

func newProfileHandler(socialLinkRepo *database.SocialLinkRepo, aboutMeRepo *database.AboutMeRepo, s serializer) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()
	return profileHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		socialLinkRepo: socialLinkRepo,
		aboutMeRepo:    aboutMeRepo,
		serializer:     s,
	}
}

// @Summary List social links
// @Tags Social Links
// @Produce json
// @Success 200 {array} SocialLinkResponse
// @Router /api/social-links [get]
func (h profileHandler) listSocialLinks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := listParams(r, false, defaultPageSize)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		// Social links take no column filters.
		params.Filters = nil

		links, total, err := h.socialLinkRepo.ListActive(r.Context(), params)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "social links", err))
			return
		}
		h.responder.writeList(w, r, params, total, mapSlice(links, h.serializer.socialLink))
	}
}

// @Summary Get social link
// @Tags Social Links
// @Produce json
// @Param linkID path int true "Social link ID"
// @Success 200 {object} SocialLinkResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/social-links/{linkID} [get]
func (h profileHandler) getSocialLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "linkID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		link, err := h.socialLinkRepo.GetActive(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "social link", err))
			return
		}
		h.responder.WriteJSON(w, h.serializer.socialLink(link))
	}
}

// listAboutMe returns the singleton as a list of zero or one element.
// @Summary List about me
// @Tags About Me
// @Produce json
// @Success 200 {array} AboutMeResponse
// @Router /api/about-me [get]
func (h profileHandler) listAboutMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := []AboutMeResponse{}
		about, err := h.aboutMeRepo.Current(r.Context())
		switch {
		case err == nil:
			out = append(out, h.serializer.aboutMe(about))
		case !errors.Is(err, gorm.ErrRecordNotFound):
			h.responder.WriteError(w, wrapDatabaseError("find", "about me", err))
			return
		}
		h.responder.WriteJSON(w, out)
	}
}

// aboutMeInfo returns the singleton, or a 404 detail when none exists yet.
// @Summary About me info
// @Tags About Me
// @Produce json
// @Success 200 {object} AboutMeResponse
// @Failure 404 {object} map[string]string
// @Router /api/about-me/info [get]
func (h profileHandler) aboutMeInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		about, err := h.aboutMeRepo.Current(r.Context())
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.responder.WriteJSONStatus(w, http.StatusNotFound, map[string]string{
				"detail": "About Me information not found",
			})
			return
		}
		if err != nil {
			h.responder.WriteJSONStatus(w, http.StatusInternalServerError, map[string]string{
				"detail": err.Error(),
			})
			return
		}
		h.responder.WriteJSON(w, h.serializer.aboutMe(about))
	}
}

// @Summary Get about me by id
// @Tags About Me
// @Produce json
// @Param aboutID path int true "About me ID"
// @Success 200 {object} AboutMeResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/about-me/{aboutID} [get]
func (h profileHandler) getAboutMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "aboutID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if id != models.AboutMeID {
			h.responder.WriteError(w, wrapDatabaseError("find", "about me", gorm.ErrRecordNotFound))
			return
		}
		about, err := h.aboutMeRepo.Current(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "about me", err))
			return
		}
		h.responder.WriteJSON(w, h.serializer.aboutMe(about))
	}
}
