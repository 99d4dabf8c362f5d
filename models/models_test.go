package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/database/dbtest"
	"github.com/rpupo63/portfolio-backend/models"
)

func TestChoiceLabels(t *testing.T) {
	assert.Equal(t, "UI/UX Design", models.ServiceDesign.Label())
	assert.Equal(t, "As soon as possible", models.TimelineASAP.Label())
	assert.Equal(t, models.NotSpecified, models.Timeline("").Label())
	assert.Equal(t, "Not sure / Need quote", models.BudgetNotSure.Label())
	assert.Equal(t, models.NotSpecified, models.BudgetRange("a lot").Label())
	assert.Equal(t, "GitHub", models.PlatformGitHub.Label())
	assert.Equal(t, "quantum", models.SkillCategory("quantum").Label())

	assert.True(t, models.ProjectArchived.Valid())
	assert.False(t, models.ServiceType("plumbing").Valid())
	assert.Contains(t, models.MessageStatus("").Choices(), "replied")
}

func TestDefaults(t *testing.T) {
	var p models.Project
	p.SetDefaults()
	assert.Equal(t, models.ProjectPublished, p.Status)

	var r models.ServiceRequest
	r.SetDefaults()
	assert.Equal(t, models.RequestPending, r.Status)

	var l models.SocialLink
	l.SetDefaults()
	assert.True(t, l.IsActive)
}

func TestColumnReport(t *testing.T) {
	db := dbtest.New(t)
	require.NoError(t, db.Exec("ALTER TABLE projects ADD COLUMN legacy_slug text").Error)

	reports, err := models.ColumnReport(db)
	require.NoError(t, err)
	require.Len(t, reports, len(models.All()))

	byTable := map[string]models.TableReport{}
	for _, r := range reports {
		byTable[r.Table] = r
	}
	assert.Equal(t, []string{"legacy_slug"}, byTable["projects"].Unmapped)
	assert.Equal(t, "Project", byTable["projects"].ModelName)
	assert.Empty(t, byTable["skills"].Unmapped)

	out := models.FormatColumnReport(reports)
	assert.Contains(t, out, "--- Table: projects ---\nFound 1 columns not accounted for in model:\n  - legacy_slug\n")
	assert.Contains(t, out, "Total mismatched columns across all tables: 1")
}

func TestFormatColumnReportMissingTable(t *testing.T) {
	out := models.FormatColumnReport([]models.TableReport{{Table: "about_me", Missing: true}})
	assert.Contains(t, out, "Table does not exist yet")
	assert.Contains(t, out, "Total mismatched columns across all tables: 0")
}
