package models

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

/*
Column report usage:

	portfolio column-report

For every table the report lists database columns that no model field maps
to, e.g. a column left behind after a field was removed:

	--- Table: projects ---
	Found 1 columns not accounted for in model:
	  - legacy_slug
*/

// GenerateQueries writes gorm/gen query helpers for every model into outPath.
func GenerateQueries(db *gorm.DB, outPath string) error {
	if err := db.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("database not reachable: %w", err)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(All()...)

	log.Info().Str("outPath", outPath).Msg("Generating query helpers")
	g.Execute()
	return nil
}

// TableReport lists the columns of one table that no model field covers.
type TableReport struct {
	Table     string
	ModelName string
	Missing   bool
	Unmapped  []string
}

// ColumnReport compares live table columns against the model schemas.
func ColumnReport(db *gorm.DB) ([]TableReport, error) {
	var reports []TableReport
	for _, model := range All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse %T: %w", model, err)
		}
		report := TableReport{
			Table:     stmt.Schema.Table,
			ModelName: reflect.Indirect(reflect.ValueOf(model)).Type().Name(),
		}

		if !db.Migrator().HasTable(stmt.Schema.Table) {
			report.Missing = true
			reports = append(reports, report)
			continue
		}

		columns, err := db.Migrator().ColumnTypes(model)
		if err != nil {
			return nil, fmt.Errorf("columns of %s: %w", stmt.Schema.Table, err)
		}
		report.Unmapped = unmappedColumns(stmt.Schema, columns)
		reports = append(reports, report)
	}
	return reports, nil
}

func unmappedColumns(s *schema.Schema, columns []gorm.ColumnType) []string {
	var unmapped []string
	for _, col := range columns {
		if _, ok := s.FieldsByDBName[col.Name()]; !ok {
			unmapped = append(unmapped, col.Name())
		}
	}
	slices.Sort(unmapped)
	return unmapped
}

// FormatColumnReport renders reports the way the CLI prints them.
func FormatColumnReport(reports []TableReport) string {
	var b strings.Builder
	b.WriteString("=== COLUMN MISMATCH REPORT ===\n")

	total := 0
	for _, r := range reports {
		fmt.Fprintf(&b, "\n--- Table: %s ---\n", r.Table)
		switch {
		case r.Missing:
			b.WriteString("Table does not exist yet (run migrate)\n")
		case len(r.Unmapped) == 0:
			b.WriteString("All columns are accounted for in the model.\n")
		default:
			fmt.Fprintf(&b, "Found %d columns not accounted for in model:\n", len(r.Unmapped))
			for _, col := range r.Unmapped {
				fmt.Fprintf(&b, "  - %s\n", col)
			}
			total += len(r.Unmapped)
		}
	}

	fmt.Fprintf(&b, "\n=== SUMMARY ===\nTotal mismatched columns across all tables: %d\n", total)
	return b.String()
}
