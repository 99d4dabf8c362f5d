package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
)

type skillHandler struct {
	responder  Responder
	logger     zerolog.Logger
	skillRepo  *database.SkillRepo
	serializer serializer
}

func newSkillHandler(skillRepo *database.SkillRepo, s serializer) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()
	return skillHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		skillRepo:  skillRepo,
		serializer: s,
	}
}

// @Summary List skills
// @Description Active skills, filterable by category and is_active
// @Tags Skills
// @Produce json
// @Success 200 {array} SkillResponse
// @Router /api/skills [get]
func (h skillHandler) listSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := listParams(r, false, defaultPageSize)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skills, total, err := h.skillRepo.ListActive(r.Context(), params)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "skills", err))
			return
		}

		h.responder.writeList(w, r, params, total, mapSlice(skills, h.serializer.skill))
	}
}

// skillsByCategory groups every active skill under its category label. Keys
// follow the position of each category's first skill in display order.
// @Summary Skills by category
// @Tags Skills
// @Produce json
// @Success 200 {object} map[string][]SkillResponse
// @Router /api/skills/by-category [get]
func (h skillHandler) skillsByCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.AllActive(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "skills", err))
			return
		}

		var categories skillGroups
		for i := range skills {
			categories.add(skills[i].Category.Label(), h.serializer.skill(&skills[i]))
		}
		h.responder.WriteJSON(w, categories)
	}
}

// @Summary Get skill
// @Tags Skills
// @Produce json
// @Param skillID path int true "Skill ID"
// @Success 200 {object} SkillResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/skills/{skillID} [get]
func (h skillHandler) getSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := idParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill, err := h.skillRepo.GetActive(r.Context(), skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		h.responder.WriteJSON(w, h.serializer.skill(skill))
	}
}

// skillGroups is a JSON object whose keys keep insertion order.
type skillGroups struct {
	labels []string
	skills map[string][]SkillResponse
}

func (g *skillGroups) add(label string, skill SkillResponse) {
	if g.skills == nil {
		g.skills = map[string][]SkillResponse{}
	}
	if _, ok := g.skills[label]; !ok {
		g.labels = append(g.labels, label)
	}
	g.skills[label] = append(g.skills[label], skill)
}

func (g skillGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range g.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(g.skills[label])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
