package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
)

var timestampsFieldset = []string{"collapse"}

func serviceRequestAdmin(db database.Database, s serializer) adminResource {
	a := newModelAdmin(adminOptions{
		Name:           "service-requests",
		VerboseName:    "Service Request",
		ListDisplay:    []string{"full_name", "email", "service_type", "status", "submitted_at"},
		ListFilter:     []string{"service_type", "status", "preferred_timeline", "submitted_at"},
		SearchFields:   []string{"full_name", "email", "project_requirements"},
		ListEditable:   []string{"status"},
		ReadonlyFields: []string{"submitted_at", "updated_at"},
		DateHierarchy:  "submitted_at",
		Ordering:       []string{"-submitted_at"},
		Fieldsets: []fieldset{
			{Name: "Client Information", Fields: []string{"full_name", "email"}},
			{Name: "Service Details", Fields: []string{"service_type", "project_requirements", "preferred_timeline", "budget_range"}},
			{Name: "Status", Fields: []string{"status", "agree_to_terms"}},
			{Name: "Timestamps", Fields: []string{"submitted_at", "updated_at"}, Classes: timestampsFieldset},
		},
	}, db.ServiceRequestRepo().Store, map[string]database.Filter{
		"service_type":       {Column: "service_type", Kind: database.FilterString},
		"status":             {Column: "status", Kind: database.FilterString},
		"preferred_timeline": {Column: "preferred_timeline", Kind: database.FilterString},
	}, func(r *models.ServiceRequest) any { return s.serviceRequest(r) })
	return a
}

func contactMessageAdmin(db database.Database, s serializer) adminResource {
	return newModelAdmin(adminOptions{
		Name:           "contact-messages",
		VerboseName:    "Contact Message",
		ListDisplay:    []string{"full_name", "email", "subject", "status", "submitted_at"},
		ListFilter:     []string{"status", "submitted_at"},
		SearchFields:   []string{"full_name", "email", "subject", "message"},
		ListEditable:   []string{"status"},
		ReadonlyFields: []string{"submitted_at", "updated_at"},
		DateHierarchy:  "submitted_at",
		Ordering:       []string{"-submitted_at"},
		Fieldsets: []fieldset{
			{Name: "Contact Information", Fields: []string{"full_name", "email"}},
			{Name: "Message", Fields: []string{"subject", "message"}},
			{Name: "Status", Fields: []string{"status"}},
			{Name: "Timestamps", Fields: []string{"submitted_at", "updated_at"}, Classes: timestampsFieldset},
		},
	}, db.ContactMessageRepo().Store, map[string]database.Filter{
		"status": {Column: "status", Kind: database.FilterString},
	}, func(m *models.ContactMessage) any { return s.contactMessage(m) })
}

func projectAdmin(db database.Database, s serializer) adminResource {
	repo := db.ProjectRepo()
	a := newModelAdmin(adminOptions{
		Name:           "projects",
		VerboseName:    "Project",
		ListDisplay:    []string{"name", "status", "is_featured", "order", "created_at"},
		ListFilter:     []string{"status", "is_featured", "created_at"},
		SearchFields:   []string{"name", "description"},
		ListEditable:   []string{"status", "is_featured", "order"},
		ReadonlyFields: []string{"created_at", "updated_at"},
		DateHierarchy:  "created_at",
		Ordering:       []string{"order", "-created_at"},
		Fieldsets: []fieldset{
			{Name: "Basic Information", Fields: []string{"name", "description", "detailed_description"}},
			{Name: "Media", Fields: []string{"image", "thumbnail"}},
			{Name: "Links", Fields: []string{"code_link", "demo_link"}},
			{Name: "Display Settings", Fields: []string{"status", "order", "is_featured"}},
			{Name: "Timestamps", Fields: []string{"created_at", "updated_at"}, Classes: timestampsFieldset},
		},
	}, repo.Store, map[string]database.Filter{
		"status":      {Column: "status", Kind: database.FilterString},
		"is_featured": {Column: "is_featured", Kind: database.FilterBool},
	}, func(p *models.Project) any { return s.project(p, int64(len(p.Testimonials))) })
	a.find = []database.Scope{
		database.Preload("ProjectSkills", func(db *gorm.DB) *gorm.DB { return db.Order("id") }),
		database.Preload("ProjectSkills.Skill"),
		database.Preload("Testimonials", "is_active = ?", true),
	}
	a.remove = repo.Delete
	return a
}

func skillAdmin(db database.Database, s serializer) adminResource {
	return newModelAdmin(adminOptions{
		Name:         "skills",
		VerboseName:  "Skill",
		ListDisplay:  []string{"name", "category", "proficiency", "order", "is_active"},
		ListFilter:   []string{"category", "is_active"},
		SearchFields: []string{"name"},
		ListEditable: []string{"proficiency", "order", "is_active"},
		Ordering:     []string{"order", "name"},
	}, db.SkillRepo().Store, map[string]database.Filter{
		"category":  {Column: "category", Kind: database.FilterString},
		"is_active": {Column: "is_active", Kind: database.FilterBool},
	}, func(sk *models.Skill) any { return s.skill(sk) })
}

// projectSkillAdmin filters by either side of the link. Search is not
// offered since both searchable names live on joined tables.
func projectSkillAdmin(db database.Database, s serializer) adminResource {
	a := newModelAdmin(adminOptions{
		Name:        "project-skills",
		VerboseName: "Project Skill",
		ListDisplay: []string{"project", "skill"},
		ListFilter:  []string{"project", "skill"},
	}, db.ProjectSkillRepo().Store, map[string]database.Filter{
		"project": {Column: "project_id", Kind: database.FilterInt},
		"skill":   {Column: "skill_id", Kind: database.FilterInt},
	}, func(l *models.ProjectSkill) any { return s.projectSkillAdmin(l) })
	a.spec.Ordering = []string{"id", "project_id", "skill_id"}
	a.find = []database.Scope{database.Preload("Project"), database.Preload("Skill")}
	return a
}

func testimonialAdmin(db database.Database, s serializer) adminResource {
	a := newModelAdmin(adminOptions{
		Name:           "testimonials",
		VerboseName:    "Testimonial",
		ListDisplay:    []string{"client_name", "client_company", "rating", "is_featured", "is_active", "created_at"},
		ListFilter:     []string{"rating", "is_featured", "is_active", "created_at"},
		SearchFields:   []string{"client_name", "client_company", "testimonial"},
		ListEditable:   []string{"is_featured", "is_active"},
		ReadonlyFields: []string{"created_at"},
		DateHierarchy:  "created_at",
		Ordering:       []string{"-created_at"},
		Fieldsets: []fieldset{
			{Name: "Client Information", Fields: []string{"client_name", "client_position", "client_company", "client_image"}},
			{Name: "Testimonial", Fields: []string{"testimonial", "rating", "project"}},
			{Name: "Display Settings", Fields: []string{"is_featured", "is_active"}},
			{Name: "Timestamps", Fields: []string{"created_at"}, Classes: timestampsFieldset},
		},
	}, db.TestimonialRepo().Store, map[string]database.Filter{
		"rating":      {Column: "rating", Kind: database.FilterInt},
		"is_featured": {Column: "is_featured", Kind: database.FilterBool},
		"is_active":   {Column: "is_active", Kind: database.FilterBool},
	}, func(t *models.Testimonial) any { return s.testimonial(t) })
	a.find = []database.Scope{database.Preload("Project")}
	return a
}

func socialLinkAdmin(db database.Database, s serializer) adminResource {
	return newModelAdmin(adminOptions{
		Name:         "social-links",
		VerboseName:  "Social Link",
		ListDisplay:  []string{"platform", "url", "order", "is_active"},
		ListFilter:   []string{"platform", "is_active"},
		ListEditable: []string{"order", "is_active"},
		Ordering:     []string{"order"},
	}, db.SocialLinkRepo().Store, map[string]database.Filter{
		"platform":  {Column: "platform", Kind: database.FilterString},
		"is_active": {Column: "is_active", Kind: database.FilterBool},
	}, func(l *models.SocialLink) any { return s.socialLink(l) })
}

// aboutMeAdmin allows a single record that can be edited but never removed.
func aboutMeAdmin(db database.Database, s serializer) adminResource {
	repo := db.AboutMeRepo()
	a := newModelAdmin(adminOptions{
		Name:           "about-me",
		VerboseName:    "About Me",
		ReadonlyFields: []string{"updated_at"},
		Fieldsets: []fieldset{
			{Name: "Basic Information", Fields: []string{"title", "bio", "detailed_bio", "profile_image"}},
			{Name: "Professional Details", Fields: []string{"years_of_experience", "resume_file"}},
			{Name: "Contact Information", Fields: []string{"email", "phone", "location"}},
			{Name: "Timestamps", Fields: []string{"updated_at"}, Classes: timestampsFieldset},
		},
	}, repo.Store, nil, func(about *models.AboutMe) any { return s.aboutMe(about) })
	a.canAdd = func(ctx context.Context) (bool, error) {
		exists, err := repo.Exists(ctx)
		return !exists, err
	}
	a.add = repo.Add
	a.deletable = false
	return a
}

func adminResources(db database.Database, s serializer) []adminResource {
	return []adminResource{
		serviceRequestAdmin(db, s),
		contactMessageAdmin(db, s),
		projectAdmin(db, s),
		skillAdmin(db, s),
		projectSkillAdmin(db, s),
		testimonialAdmin(db, s),
		socialLinkAdmin(db, s),
		aboutMeAdmin(db, s),
	}
}

type adminIndexHandler struct {
	responder Responder
	resources []adminResource
}

func (h adminIndexHandler) mount(r chi.Router) {
	r.Get("/", h.index())
	for _, res := range h.resources {
		res.mount(r)
	}
}

// index lists every registered model with its console options.
func (h adminIndexHandler) index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metas := make([]AdminMeta, 0, len(h.resources))
		for _, res := range h.resources {
			m, err := res.meta(r.Context())
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("describe", "admin", err))
				return
			}
			metas = append(metas, m)
		}
		h.responder.WriteJSON(w, map[string]any{"models": metas})
	}
}
