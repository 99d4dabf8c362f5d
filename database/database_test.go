package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/database/dbtest"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

func newDB(t *testing.T) database.Database {
	t.Helper()
	return database.New(dbtest.New(t))
}

func addProject(t *testing.T, db database.Database, p models.Project) *models.Project {
	t.Helper()
	if p.Status == "" {
		p.Status = models.ProjectPublished
	}
	if p.Description == "" {
		p.Description = "desc"
	}
	require.NoError(t, db.ProjectRepo().Add(context.Background(), &p))
	return &p
}

func addSkill(t *testing.T, db database.Database, name string, active bool) *models.Skill {
	t.Helper()
	s := models.Skill{Name: name, Category: models.CategoryBackend}
	s.SetDefaults()
	s.IsActive = active
	require.NoError(t, db.SkillRepo().Add(context.Background(), &s))
	return &s
}

func projectNames(projects []models.Project) []string {
	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Name
	}
	return names
}

func TestProjectDefaultOrdering(t *testing.T) {
	db := newDB(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	addProject(t, db, models.Project{Name: "p1", Order: 2, CreatedAt: base})
	addProject(t, db, models.Project{Name: "p2", Order: 1, CreatedAt: base.Add(time.Hour)})
	addProject(t, db, models.Project{Name: "p3", Order: 1, CreatedAt: base.Add(2 * time.Hour)})

	projects, total, err := db.ProjectRepo().ListPublished(context.Background(), database.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []string{"p3", "p2", "p1"}, projectNames(projects))
}

func TestProjectListing(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()

	addProject(t, db, models.Project{Name: "Alpha Site", Description: "A web shop", IsFeatured: true})
	addProject(t, db, models.Project{Name: "Beta App", Description: "Mobile banking"})
	draft := addProject(t, db, models.Project{Name: "Gamma", Status: models.ProjectDraft})

	tests := []struct {
		name   string
		params database.ListParams
		want   []string
	}{
		{
			name:   "drafts hidden",
			params: database.ListParams{Ordering: "name"},
			want:   []string{"Alpha Site", "Beta App"},
		},
		{
			name:   "search is case insensitive",
			params: database.ListParams{Search: "BANKING"},
			want:   []string{"Beta App"},
		},
		{
			name:   "featured filter",
			params: database.ListParams{Filters: map[string]string{"is_featured": "true"}},
			want:   []string{"Alpha Site"},
		},
		{
			name:   "blank filters ignored",
			params: database.ListParams{Filters: map[string]string{"is_featured": "", "status": " "}},
			want:   []string{"Beta App", "Alpha Site"},
		},
		{
			name:   "descending name",
			params: database.ListParams{Ordering: "-name"},
			want:   []string{"Beta App", "Alpha Site"},
		},
		{
			name:   "unknown ordering uses default",
			params: database.ListParams{Ordering: "description", Filters: map[string]string{"unknown": "x"}},
			want:   []string{"Beta App", "Alpha Site"},
		},
		{
			name:   "page two",
			params: database.ListParams{Ordering: "name", Page: 2, PageSize: 1},
			want:   []string{"Beta App"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects, _, err := db.ProjectRepo().ListPublished(ctx, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, projectNames(projects))
		})
	}

	_, err := db.ProjectRepo().GetPublished(ctx, draft.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	featured, err := db.ProjectRepo().ListFeatured(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha Site"}, projectNames(featured))
}

func TestProjectListingPageCount(t *testing.T) {
	db := newDB(t)
	for _, name := range []string{"a", "b", "c"} {
		addProject(t, db, models.Project{Name: name})
	}

	projects, total, err := db.ProjectRepo().ListPublished(context.Background(),
		database.ListParams{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, projects, 2)
	assert.Equal(t, int64(3), total)
}

func TestSearchMatchesWildcardsLiterally(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()

	addProject(t, db, models.Project{Name: "Growth 100%", Description: "dashboard"})
	addProject(t, db, models.Project{Name: "snake_case", Description: "linter"})
	addProject(t, db, models.Project{Name: "Plain", Description: `C:\tools`})

	for term, want := range map[string][]string{
		"%":    {"Growth 100%"},
		"_":    {"snake_case"},
		`\`:    {"Plain"},
		"e_c":  {"snake_case"},
		"nope": nil,
	} {
		projects, _, err := db.ProjectRepo().ListPublished(ctx, database.ListParams{Search: term, Ordering: "name"})
		require.NoError(t, err, term)
		if want == nil {
			assert.Empty(t, projects, term)
			continue
		}
		assert.Equal(t, want, projectNames(projects), term)
	}
}

func TestInvalidFilterValue(t *testing.T) {
	db := newDB(t)

	_, _, err := db.ProjectRepo().ListPublished(context.Background(), database.ListParams{
		Filters: map[string]string{"is_featured": "maybe"},
	})
	require.Error(t, err)
	assert.True(t, errs.IsInvalidFieldError(err))
}

func TestProjectSkills(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()

	p := addProject(t, db, models.Project{Name: "p"})
	goSkill := addSkill(t, db, "Go", true)
	pgSkill := addSkill(t, db, "Postgres", true)

	_, err := db.ProjectSkillRepo().Link(ctx, p.ID, goSkill.ID)
	require.NoError(t, err)
	_, err = db.ProjectSkillRepo().Link(ctx, p.ID, pgSkill.ID)
	require.NoError(t, err)

	_, err = db.ProjectSkillRepo().Link(ctx, p.ID, goSkill.ID)
	require.Error(t, err)
	assert.True(t, errs.IsUniqueConstraintViolationError(errs.NewDatabaseError("create", "project skill", err)))

	got, err := db.ProjectRepo().GetPublished(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.ProjectSkills, 2)
	assert.Equal(t, "Go", got.ProjectSkills[0].Skill.Name)
	assert.Equal(t, "Postgres", got.ProjectSkills[1].Skill.Name)
}

func TestProjectDeleteKeepsTestimonials(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()

	p := addProject(t, db, models.Project{Name: "p"})
	s := addSkill(t, db, "Go", true)
	_, err := db.ProjectSkillRepo().Link(ctx, p.ID, s.ID)
	require.NoError(t, err)

	tm := models.Testimonial{ClientName: "Ann", Testimonial: "Great", ProjectID: &p.ID}
	tm.SetDefaults()
	require.NoError(t, db.TestimonialRepo().Add(ctx, &tm))

	n, err := db.ProjectRepo().CountActiveTestimonials(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, db.ProjectRepo().Delete(ctx, p.ID))
	assert.ErrorIs(t, db.ProjectRepo().Delete(ctx, p.ID), gorm.ErrRecordNotFound)

	kept, err := db.TestimonialRepo().FindByID(ctx, tm.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.ProjectID)

	links, err := db.ProjectSkillRepo().ForProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, links)

	_, err = db.SkillRepo().FindByID(ctx, s.ID)
	assert.NoError(t, err)
}

func TestSkillVisibility(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()

	addSkill(t, db, "Go", true)
	hidden := addSkill(t, db, "Perl", false)

	skills, _, err := db.SkillRepo().ListActive(ctx, database.ListParams{})
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Go", skills[0].Name)

	_, err = db.SkillRepo().GetActive(ctx, hidden.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	all, err := db.SkillRepo().AllActive(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateColumnsWritesZeroValues(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()

	s := addSkill(t, db, "Go", true)
	s.IsActive = false
	s.Name = "ignored"
	require.NoError(t, db.SkillRepo().UpdateColumns(ctx, s, "is_active"))

	got, err := db.SkillRepo().FindByID(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.Equal(t, "Go", got.Name)
}

func TestReplaceKeepsCreationTime(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()

	created := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	p := addProject(t, db, models.Project{Name: "old", CreatedAt: created})

	replacement := models.Project{Name: "new", Description: "d", Status: models.ProjectArchived}
	require.NoError(t, db.ProjectRepo().Replace(ctx, p.ID, &replacement))

	got, err := db.ProjectRepo().FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Name)
	assert.Equal(t, models.ProjectArchived, got.Status)
	assert.True(t, created.Equal(got.CreatedAt))

	assert.ErrorIs(t, db.ProjectRepo().Replace(ctx, 999, &replacement), gorm.ErrRecordNotFound)
}

func TestAboutMeSingleton(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()
	repo := db.AboutMeRepo()

	_, err := repo.Current(ctx)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	first := models.AboutMe{Bio: "Hello"}
	require.NoError(t, repo.Add(ctx, &first))
	assert.Equal(t, models.AboutMeID, first.ID)
	assert.Equal(t, "About Me", first.Title)

	exists, err := repo.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	second := models.AboutMe{Bio: "Again"}
	assert.ErrorIs(t, repo.Add(ctx, &second), models.ErrAboutMeExists)

	assert.ErrorIs(t, repo.Delete(ctx, models.AboutMeID), models.ErrAboutMeUndeletable)

	current, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Hello", current.Bio)
}

func TestTestimonialFilters(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()
	p := addProject(t, db, models.Project{Name: "p"})

	for i, rating := range []int{5, 3, 4} {
		tm := models.Testimonial{ClientName: "c", Testimonial: "t"}
		tm.SetDefaults()
		tm.Rating = rating
		tm.IsFeatured = i == 0
		if i == 1 {
			tm.ProjectID = &p.ID
		}
		require.NoError(t, db.TestimonialRepo().Add(ctx, &tm))
	}

	items, _, err := db.TestimonialRepo().ListActive(ctx, database.ListParams{Ordering: "-rating"})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []int{5, 4, 3}, []int{items[0].Rating, items[1].Rating, items[2].Rating})

	items, _, err = db.TestimonialRepo().ListActive(ctx, database.ListParams{
		Filters: map[string]string{"project": "1"},
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Project)
	assert.Equal(t, "p", items[0].Project.Name)

	featured, err := db.TestimonialRepo().ListFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, 5, featured[0].Rating)
}

func TestActiveTestimonialCounts(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()
	a := addProject(t, db, models.Project{Name: "a"})
	b := addProject(t, db, models.Project{Name: "b"})

	for _, tc := range []struct {
		project *uint
		active  bool
	}{{&a.ID, true}, {&a.ID, true}, {&a.ID, false}, {&b.ID, false}, {nil, true}} {
		tm := models.Testimonial{ClientName: "c", Testimonial: "t", ProjectID: tc.project}
		tm.SetDefaults()
		tm.IsActive = tc.active
		require.NoError(t, db.TestimonialRepo().Add(ctx, &tm))
	}

	counts, err := db.ProjectRepo().ActiveTestimonialCounts(ctx, []uint{a.ID, b.ID})
	require.NoError(t, err)
	assert.Equal(t, map[uint]int64{a.ID: 2}, counts)
}
