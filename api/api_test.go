package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/database/dbtest"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
)

const (
	testOrigin   = "https://portfolio.example.com"
	testPassword = "correct horse"
)

type fakeNotifier struct {
	result   bool
	requests []*models.ServiceRequest
	messages []*models.ContactMessage
}

func (f *fakeNotifier) ServiceRequestReceived(ctx context.Context, r *models.ServiceRequest) bool {
	f.requests = append(f.requests, r)
	return f.result
}

func (f *fakeNotifier) ContactMessageReceived(ctx context.Context, m *models.ContactMessage) bool {
	f.messages = append(f.messages, m)
	return f.result
}

type testEnv struct {
	db       *gorm.DB
	database database.Database
	notifier *fakeNotifier
	cfg      config.Config
	router   http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.Config{
		AcceptedOrigins: []string{testOrigin},
		Media: config.MediaConfig{
			Root:        t.TempDir(),
			URL:         "/media/",
			MaxUploadMB: 1,
		},
		Admin: config.AdminConfig{
			PasswordHash:    string(hash),
			JWTSecret:       "test-secret",
			TokenTTLMinutes: 60,
		},
	}

	db := dbtest.New(t)
	env := &testEnv{
		db:       db,
		database: database.New(db),
		notifier: &fakeNotifier{result: true},
		cfg:      cfg,
	}
	env.router = newRouter(Deps{
		Database: env.database,
		Notifier: env.notifier,
		Media:    services.NewLocalMediaStore(cfg.Media.Root, cfg.Media.URL),
	}, withConfig(cfg), withStartupTime(time.Now()))
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/admin/login", map[string]string{"password": testPassword}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[LoginResponse](t, rec).Token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func validServiceRequest() map[string]any {
	return map[string]any{
		"service_type":         "web",
		"full_name":            "Ada Lovelace",
		"email":                "ada@example.com",
		"project_requirements": "A landing page",
		"preferred_timeline":   "asap",
		"budget_range":         "$2,500 - $5,000",
		"agree_to_terms":       true,
	}
}

func TestServiceRequestSubmission(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(map[string]any)
		notified   bool
		wantStatus int
		wantField  string
	}{
		{name: "accepted", mutate: func(map[string]any) {}, notified: true, wantStatus: http.StatusCreated},
		{name: "operator mail failed", mutate: func(map[string]any) {}, notified: false, wantStatus: http.StatusCreated},
		{name: "terms not accepted", mutate: func(m map[string]any) { m["agree_to_terms"] = false }, wantStatus: http.StatusBadRequest, wantField: "agree_to_terms"},
		{name: "unknown service", mutate: func(m map[string]any) { m["service_type"] = "plumbing" }, wantStatus: http.StatusBadRequest, wantField: "service_type"},
		{name: "bad email", mutate: func(m map[string]any) { m["email"] = "nope" }, wantStatus: http.StatusBadRequest, wantField: "email"},
		{name: "wrong type", mutate: func(m map[string]any) { m["agree_to_terms"] = "yes" }, wantStatus: http.StatusBadRequest, wantField: "agree_to_terms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.notifier.result = tt.notified

			body := validServiceRequest()
			body["status"] = "completed"
			tt.mutate(body)

			rec := env.do(t, http.MethodPost, "/api/service-request", body, "")
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			var resp struct {
				Success   bool                   `json:"success"`
				Message   string                 `json:"message"`
				EmailSent *bool                  `json:"email_sent"`
				Data      ServiceRequestResponse `json:"data"`
				Errors    map[string][]string    `json:"errors"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			if tt.wantStatus != http.StatusCreated {
				assert.False(t, resp.Success)
				assert.Equal(t, invalidFormMessage, resp.Message)
				assert.Contains(t, resp.Errors, tt.wantField)
				assert.Empty(t, env.notifier.requests)
				return
			}

			assert.True(t, resp.Success)
			assert.Equal(t, "Service request submitted successfully!", resp.Message)
			require.NotNil(t, resp.EmailSent)
			assert.Equal(t, tt.notified, *resp.EmailSent)
			assert.Equal(t, models.RequestPending, resp.Data.Status)
			assert.Equal(t, "Web Development", resp.Data.ServiceTypeDisplay)
			assert.NotZero(t, resp.Data.ID)
			require.Len(t, env.notifier.requests, 1)

			var stored int64
			require.NoError(t, env.db.Model(&models.ServiceRequest{}).Count(&stored).Error)
			assert.EqualValues(t, 1, stored)
		})
	}
}

func TestServiceRequestTermsMessage(t *testing.T) {
	env := newTestEnv(t)
	body := validServiceRequest()
	delete(body, "agree_to_terms")

	rec := env.do(t, http.MethodPost, "/api/service-request", body, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode[FormResponse](t, rec)
	assert.Equal(t, []string{"You must agree to the terms and conditions."}, resp.Errors["agree_to_terms"])
}

func TestContactMessageSubmission(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/contact-message", map[string]any{
		"full_name": "Grace Hopper",
		"email":     "grace@example.com",
		"subject":   "Hello",
		"message":   "Nice site",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	resp := decode[FormResponse](t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Your message has been sent successfully!", resp.Message)
	require.Len(t, env.notifier.messages, 1)
	assert.Equal(t, models.MessageNew, env.notifier.messages[0].Status)
}

func TestContactMessageEmptyBody(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/contact-message", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode[FormResponse](t, rec)
	assert.Equal(t, []string{"No data provided."}, resp.Errors["non_field_errors"])
}

func TestContactMessageStoreFailure(t *testing.T) {
	env := newTestEnv(t)
	sqlDB, err := env.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	rec := env.do(t, http.MethodPost, "/api/contact-message", map[string]any{
		"full_name": "Grace Hopper",
		"email":     "grace@example.com",
		"subject":   "Hello",
		"message":   "Nice site",
	}, "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decode[FormResponse](t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Failed to process your message. Please try again.", resp.Message)
	assert.NotEmpty(t, resp.Error)
	assert.Empty(t, env.notifier.messages)
}

type recordingMailer struct {
	failFor string
	sent    []services.Message
}

func (m *recordingMailer) Send(ctx context.Context, msg services.Message) error {
	m.sent = append(m.sent, msg)
	for _, to := range msg.To {
		if to == m.failFor {
			return errors.New("connection refused")
		}
	}
	return nil
}

func TestContactMessageOperatorMailFailure(t *testing.T) {
	env := newTestEnv(t)
	mailer := &recordingMailer{failFor: "owner@example.com"}
	notifier := services.NewNotifier(mailer, config.MailConfig{
		From:          "site@example.com",
		NotifyAddress: "owner@example.com",
	})
	router := newRouter(Deps{Database: env.database, Notifier: notifier}, withConfig(env.cfg))

	raw, err := json.Marshal(map[string]any{
		"full_name": "Grace Hopper",
		"email":     "grace@example.com",
		"subject":   "Hello",
		"message":   "Nice site",
	})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/contact-message", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	resp := decode[FormResponse](t, rec)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.EmailSent)
	assert.False(t, *resp.EmailSent)

	require.Len(t, mailer.sent, 2)
	assert.Equal(t, []string{"owner@example.com"}, mailer.sent[0].To)
	assert.Equal(t, "grace@example.com", mailer.sent[0].ReplyTo)
	assert.Equal(t, []string{"grace@example.com"}, mailer.sent[1].To)

	var stored int64
	require.NoError(t, env.db.Model(&models.ContactMessage{}).Count(&stored).Error)
	assert.EqualValues(t, 1, stored)
}

func seedProjects(t *testing.T, env *testEnv) []models.Project {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	projects := []models.Project{
		{Name: "Alpha", Description: "first", Status: models.ProjectPublished, Order: 2, CreatedAt: base},
		{Name: "Beta", Description: "second", Status: models.ProjectPublished, Order: 1, CreatedAt: base.Add(time.Hour), IsFeatured: true},
		{Name: "Gamma", Description: "third", Status: models.ProjectPublished, Order: 1, CreatedAt: base.Add(2 * time.Hour)},
		{Name: "Hidden", Description: "draft", Status: models.ProjectDraft, Order: 0, CreatedAt: base},
	}
	for i := range projects {
		require.NoError(t, env.database.ProjectRepo().Add(context.Background(), &projects[i]))
	}
	return projects
}

func TestProjectEndpoints(t *testing.T) {
	env := newTestEnv(t)
	projects := seedProjects(t, env)

	rec := env.do(t, http.MethodGet, "/api/projects/", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	items := decode[[]ProjectListItem](t, rec)
	var names []string
	for _, p := range items {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Gamma", "Beta", "Alpha"}, names)

	rec = env.do(t, http.MethodGet, "/api/projects?page=1&page_size=2", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[Page](t, rec)
	assert.EqualValues(t, 3, page.Count)
	require.NotNil(t, page.Next)
	assert.Contains(t, *page.Next, "page=2")
	assert.Nil(t, page.Previous)

	rec = env.do(t, http.MethodGet, "/api/projects?page=9", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/projects/featured", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	featured := decode[[]ProjectResponse](t, rec)
	require.Len(t, featured, 1)
	assert.Equal(t, "Beta", featured[0].Name)

	rec = env.do(t, http.MethodGet, "/api/projects/"+itoa(projects[3].ID), nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/projects/"+itoa(projects[0].ID), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decode[ProjectResponse](t, rec)
	assert.Equal(t, "Published", detail.StatusDisplay)
	assert.Zero(t, detail.TestimonialCount)

	rec = env.do(t, http.MethodGet, "/api/projects/abc", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBlankFiltersIgnored(t *testing.T) {
	env := newTestEnv(t)
	seedProjects(t, env)
	ctx := context.Background()
	for _, sk := range []models.Skill{
		{Name: "Go", Category: models.CategoryBackend, Proficiency: 90, IsActive: true},
		{Name: "React", Category: models.CategoryFrontend, Proficiency: 70, IsActive: true},
	} {
		require.NoError(t, env.database.SkillRepo().Add(ctx, &sk))
	}

	tests := []struct {
		path string
		want int
	}{
		{path: "/api/projects?status=&is_featured=", want: 3},
		{path: "/api/projects?is_featured=", want: 3},
		{path: "/api/projects?status=draft&is_featured=", want: 0},
		{path: "/api/skills?category=", want: 2},
		{path: "/api/testimonials?rating=", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, tt.path, nil, "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Len(t, decode[[]json.RawMessage](t, rec), tt.want)
		})
	}
}

func TestErrorResponseOmitsCause(t *testing.T) {
	env := newTestEnv(t)
	sqlDB, err := env.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	rec := env.do(t, http.MethodGet, "/api/projects", nil, "")
	require.GreaterOrEqual(t, rec.Code, http.StatusInternalServerError)

	body := decode[map[string]any](t, rec)
	assert.Equal(t, "error", body["status"])
	assert.NotContains(t, body, "cause")
	assert.NotContains(t, rec.Body.String(), "sql:")
}

func TestSkillsByCategory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	for _, s := range []models.Skill{
		{Name: "Go", Category: models.CategoryBackend, Proficiency: 90, Order: 1, IsActive: true},
		{Name: "React", Category: models.CategoryFrontend, Proficiency: 70, Order: 0, IsActive: true},
		{Name: "Cobol", Category: models.CategoryBackend, Proficiency: 10, IsActive: false},
	} {
		require.NoError(t, env.database.SkillRepo().Add(ctx, &s))
	}

	for _, path := range []string{"/api/skills/by-category", "/api/skills/by_category/"} {
		rec := env.do(t, http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		grouped := decode[map[string][]SkillResponse](t, rec)
		require.Len(t, grouped[models.CategoryBackend.Label()], 1)
		assert.Equal(t, "Go", grouped[models.CategoryBackend.Label()][0].Name)
		assert.Len(t, grouped[models.CategoryFrontend.Label()], 1)

		body := rec.Body.String()
		assert.Less(t, strings.Index(body, `"Frontend"`), strings.Index(body, `"Backend"`), body)
	}
}

func TestAboutMeInfo(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/about-me/info", nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"About Me information not found"}`, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/about-me", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	require.NoError(t, env.database.AboutMeRepo().Add(context.Background(), &models.AboutMe{Bio: "Hello"}))

	rec = env.do(t, http.MethodGet, "/api/about-me/info", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	about := decode[AboutMeResponse](t, rec)
	assert.Equal(t, "About Me", about.Title)

	rec = env.do(t, http.MethodGet, "/api/about-me/2", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[HealthResponse](t, rec).Status)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t)

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/contact-message", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		return rec
	}

	rec := preflight("https://evil.example.com")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	rec = preflight(testOrigin)
	assert.Less(t, rec.Code, 300)
	assert.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAdminAuthentication(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/admin/login", map[string]string{"password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/admin/projects", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/admin/projects", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := env.login(t)
	rec = env.do(t, http.MethodGet, "/admin", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	index := decode[struct {
		Models []AdminMeta `json:"models"`
	}](t, rec)
	assert.Len(t, index.Models, 8)
}

func TestAdminDisabledWithoutSecrets(t *testing.T) {
	cfg := config.Config{Media: config.MediaConfig{URL: "/media/"}}
	db := dbtest.New(t)
	router := newRouter(Deps{Database: database.New(db), Notifier: &fakeNotifier{}}, withConfig(cfg))

	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader([]byte(`{"password":"x"}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminProjects(t *testing.T) {
	env := newTestEnv(t)
	projects := seedProjects(t, env)
	token := env.login(t)

	rec := env.do(t, http.MethodGet, "/admin/projects", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[Page](t, rec)
	assert.EqualValues(t, 4, page.Count)

	ctx := context.Background()
	for _, active := range []bool{true, false} {
		require.NoError(t, env.database.TestimonialRepo().Add(ctx, &models.Testimonial{
			ClientName:  "Client",
			Testimonial: "Great work",
			Rating:      5,
			ProjectID:   &projects[0].ID,
			IsActive:    active,
		}))
	}
	rec = env.do(t, http.MethodGet, "/admin/projects/"+itoa(projects[0].ID), nil, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.EqualValues(t, 1, decode[ProjectResponse](t, rec).TestimonialCount)

	rec = env.do(t, http.MethodGet, "/admin/projects?status=draft", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decode[Page](t, rec).Count)

	id := itoa(projects[3].ID)
	rec = env.do(t, http.MethodPatch, "/admin/projects/"+id, map[string]any{"status": "published", "order": 7}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	patched := decode[ProjectResponse](t, rec)
	assert.Equal(t, models.ProjectPublished, patched.Status)
	assert.Equal(t, 7, patched.Order)

	rec = env.do(t, http.MethodPatch, "/admin/projects/"+id, map[string]any{"name": "Renamed"}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPatch, "/admin/projects/"+id, map[string]any{"status": "lost"}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "status")

	rec = env.do(t, http.MethodPost, "/admin/projects", map[string]any{"name": "Delta", "description": "new"}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[ProjectResponse](t, rec)
	assert.Equal(t, models.ProjectPublished, created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	rec = env.do(t, http.MethodPost, "/admin/projects", map[string]any{"description": "no name"}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "This field is required.")

	rec = env.do(t, http.MethodPut, "/admin/projects/"+itoa(created.ID), map[string]any{
		"name": "Delta 2", "description": "edited", "status": "archived", "created_at": "2000-01-01T00:00:00Z",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[ProjectResponse](t, rec)
	assert.Equal(t, "Delta 2", updated.Name)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())

	rec = env.do(t, http.MethodDelete, "/admin/projects/"+itoa(created.ID), nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","message":"Project deleted successfully"}`, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/admin/projects/"+itoa(created.ID), nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminAboutMeSingleton(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(t, http.MethodGet, "/admin/about-me/meta", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	meta := decode[AdminMeta](t, rec)
	assert.True(t, meta.CanAdd)
	assert.False(t, meta.CanDelete)

	rec = env.do(t, http.MethodPost, "/admin/about-me", map[string]any{"bio": "Builder of things"}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	about := decode[AboutMeResponse](t, rec)
	assert.Equal(t, models.AboutMeID, about.ID)

	rec = env.do(t, http.MethodPost, "/admin/about-me", map[string]any{"bio": "Another"}, token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodGet, "/admin/about-me/meta", nil, token)
	assert.False(t, decode[AdminMeta](t, rec).CanAdd)

	rec = env.do(t, http.MethodDelete, "/admin/about-me/1", nil, token)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	exists, err := env.database.AboutMeRepo().Exists(context.Background())
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAdminProjectSkillDuplicate(t *testing.T) {
	env := newTestEnv(t)
	projects := seedProjects(t, env)
	skill := models.Skill{Name: "Go", Category: models.CategoryBackend, Proficiency: 80, IsActive: true}
	require.NoError(t, env.database.SkillRepo().Add(context.Background(), &skill))
	token := env.login(t)

	link := map[string]any{"project": projects[0].ID, "skill": skill.ID}
	rec := env.do(t, http.MethodPost, "/admin/project-skills", link, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[ProjectSkillAdminResponse](t, rec)
	assert.Equal(t, "Alpha", created.ProjectName)
	assert.Equal(t, "Go", created.SkillName)

	rec = env.do(t, http.MethodPost, "/admin/project-skills", link, token)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(t, http.MethodGet, "/admin/project-skills?project="+itoa(projects[0].ID), nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decode[Page](t, rec).Count)
}

func TestAdminMediaUpload(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	upload := func(dir string) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("upload_to", dir))
		fw, err := mw.CreateFormFile("file", "shot.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("png bytes"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/admin/media", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		return rec
	}

	rec := upload("projects")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	resp := decode[UploadResponse](t, rec)
	assert.Regexp(t, `^projects/[0-9a-f]{8}_shot\.png$`, resp.Name)
	assert.Equal(t, "/media/"+resp.Name, resp.URL)

	content, err := os.ReadFile(filepath.Join(env.cfg.Media.Root, filepath.FromSlash(resp.Name)))
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(content))

	served := env.do(t, http.MethodGet, resp.URL, nil, "")
	require.Equal(t, http.StatusOK, served.Code)
	assert.Equal(t, "png bytes", served.Body.String())

	rec = upload("../etc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
