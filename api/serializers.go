package api

import (
	"time"

	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
)

// serializer turns models into response payloads, adding display labels and
// resolving stored media names to URLs.
type serializer struct {
	media services.MediaStore
}

func (s serializer) mediaURL(name *string) *string {
	if name == nil || *name == "" {
		return nil
	}
	if s.media == nil {
		return name
	}
	u := s.media.URL(*name)
	return &u
}

type ServiceRequestResponse struct {
	models.ServiceRequest
	ServiceTypeDisplay string `json:"service_type_display"`
	StatusDisplay      string `json:"status_display"`
}

func (s serializer) serviceRequest(r *models.ServiceRequest) ServiceRequestResponse {
	return ServiceRequestResponse{
		ServiceRequest:     *r,
		ServiceTypeDisplay: r.ServiceType.Label(),
		StatusDisplay:      r.Status.Label(),
	}
}

type ContactMessageResponse struct {
	models.ContactMessage
	StatusDisplay string `json:"status_display"`
}

func (s serializer) contactMessage(m *models.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{ContactMessage: *m, StatusDisplay: m.Status.Label()}
}

type SkillResponse struct {
	models.Skill
	CategoryDisplay string `json:"category_display"`
}

func (s serializer) skill(sk *models.Skill) SkillResponse {
	return SkillResponse{Skill: *sk, CategoryDisplay: sk.Category.Label()}
}

// ProjectSkillResponse is a project's link to one skill, flattened with the
// skill's display fields.
type ProjectSkillResponse struct {
	ID            uint   `json:"id"`
	Skill         uint   `json:"skill"`
	SkillName     string `json:"skill_name"`
	SkillIcon     string `json:"skill_icon"`
	SkillCategory string `json:"skill_category"`
}

func (s serializer) projectSkills(links []models.ProjectSkill) []ProjectSkillResponse {
	out := make([]ProjectSkillResponse, 0, len(links))
	for _, l := range links {
		item := ProjectSkillResponse{ID: l.ID, Skill: l.SkillID}
		if l.Skill != nil {
			item.SkillName = l.Skill.Name
			item.SkillIcon = l.Skill.Icon
			item.SkillCategory = string(l.Skill.Category)
		}
		out = append(out, item)
	}
	return out
}

// ProjectListItem is the lighter project shape used by the list view.
type ProjectListItem struct {
	ID            uint                   `json:"id"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	Thumbnail     *string                `json:"thumbnail"`
	CodeLink      string                 `json:"code_link"`
	DemoLink      string                 `json:"demo_link"`
	Status        models.ProjectStatus   `json:"status"`
	StatusDisplay string                 `json:"status_display"`
	IsFeatured    bool                   `json:"is_featured"`
	Skills        []ProjectSkillResponse `json:"skills"`
	CreatedAt     time.Time              `json:"created_at"`
}

func (s serializer) projectListItem(p *models.Project) ProjectListItem {
	return ProjectListItem{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Thumbnail:     s.mediaURL(p.Thumbnail),
		CodeLink:      p.CodeLink,
		DemoLink:      p.DemoLink,
		Status:        p.Status,
		StatusDisplay: p.Status.Label(),
		IsFeatured:    p.IsFeatured,
		Skills:        s.projectSkills(p.ProjectSkills),
		CreatedAt:     p.CreatedAt,
	}
}

type ProjectResponse struct {
	models.Project
	Image            *string                `json:"image"`
	Thumbnail        *string                `json:"thumbnail"`
	StatusDisplay    string                 `json:"status_display"`
	Skills           []ProjectSkillResponse `json:"skills"`
	TestimonialCount int64                  `json:"testimonial_count"`
}

func (s serializer) project(p *models.Project, testimonials int64) ProjectResponse {
	return ProjectResponse{
		Project:          *p,
		Image:            s.mediaURL(p.Image),
		Thumbnail:        s.mediaURL(p.Thumbnail),
		StatusDisplay:    p.Status.Label(),
		Skills:           s.projectSkills(p.ProjectSkills),
		TestimonialCount: testimonials,
	}
}

type TestimonialResponse struct {
	models.Testimonial
	ClientImage *string `json:"client_image"`
	ProjectName *string `json:"project_name"`
}

func (s serializer) testimonial(t *models.Testimonial) TestimonialResponse {
	resp := TestimonialResponse{Testimonial: *t, ClientImage: s.mediaURL(t.ClientImage)}
	if t.Project != nil {
		resp.ProjectName = &t.Project.Name
	}
	return resp
}

type SocialLinkResponse struct {
	models.SocialLink
	PlatformDisplay string `json:"platform_display"`
}

func (s serializer) socialLink(l *models.SocialLink) SocialLinkResponse {
	return SocialLinkResponse{SocialLink: *l, PlatformDisplay: l.Platform.Label()}
}

type AboutMeResponse struct {
	models.AboutMe
	ProfileImage *string `json:"profile_image"`
	ResumeFile   *string `json:"resume_file"`
}

func (s serializer) aboutMe(a *models.AboutMe) AboutMeResponse {
	return AboutMeResponse{
		AboutMe:      *a,
		ProfileImage: s.mediaURL(a.ProfileImage),
		ResumeFile:   s.mediaURL(a.ResumeFile),
	}
}

// ProjectSkillAdminResponse names both ends of a link for the console.
type ProjectSkillAdminResponse struct {
	models.ProjectSkill
	ProjectName string `json:"project_name"`
	SkillName   string `json:"skill_name"`
}

func (s serializer) projectSkillAdmin(l *models.ProjectSkill) ProjectSkillAdminResponse {
	resp := ProjectSkillAdminResponse{ProjectSkill: *l}
	if l.Project != nil {
		resp.ProjectName = l.Project.Name
	}
	if l.Skill != nil {
		resp.SkillName = l.Skill.Name
	}
	return resp
}

func mapSlice[T, R any](items []T, fn func(*T) R) []R {
	out := make([]R, 0, len(items))
	for i := range items {
		out = append(out, fn(&items[i]))
	}
	return out
}
