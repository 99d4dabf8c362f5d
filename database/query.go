package database

import (
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rpupo63/portfolio-backend/errs"
)

// Scope narrows a query. Scopes compose with gorm's db.Scopes.
type Scope = func(*gorm.DB) *gorm.DB

func Where(column string, value any) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	}
}

func Preload(query string, args ...any) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Preload(query, args...)
	}
}

type FilterKind int

const (
	FilterString FilterKind = iota
	FilterBool
	FilterInt
	FilterDate
)

// Filter maps a query parameter onto a column comparison.
type Filter struct {
	Column string
	Kind   FilterKind
	Op     string // "=" when empty; ">=" and "<=" for date ranges
}

// ListSpec whitelists what a listing may be filtered, searched and ordered by.
// Column names never come from the request; only values do.
type ListSpec struct {
	Filters  map[string]Filter
	Search   []string
	Ordering []string
	Default  []string
}

type ListParams struct {
	Filters  map[string]string
	Search   string
	Ordering string
	Page     int
	PageSize int
}

// Query bundles a listing request. Where scopes constrain the row set and are
// applied to counts as well; Find scopes (preloads) only apply to the fetch.
type Query struct {
	Spec   ListSpec
	Params ListParams
	Where  []Scope
	Find   []Scope
}

func (s ListSpec) filter(db *gorm.DB, p ListParams) (*gorm.DB, error) {
	for name, raw := range p.Filters {
		f, ok := s.Filters[name]
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		value, err := f.parse(raw)
		if err != nil {
			return nil, errs.NewInvalidFieldError(name, err.Error())
		}
		col := clause.Column{Name: f.Column}
		switch f.Op {
		case ">=":
			db = db.Where(clause.Gte{Column: col, Value: value})
		case "<=":
			db = db.Where(clause.Lte{Column: col, Value: value})
		default:
			db = db.Where(clause.Eq{Column: col, Value: value})
		}
	}

	term := strings.TrimSpace(p.Search)
	if term != "" && len(s.Search) > 0 {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
		exprs := make([]clause.Expression, 0, len(s.Search))
		for _, field := range s.Search {
			exprs = append(exprs, clause.Expr{
				SQL:  `LOWER(?) LIKE ? ESCAPE '\'`,
				Vars: []any{clause.Column{Name: field}, pattern},
			})
		}
		db = db.Where(clause.Or(exprs...))
	}
	return db, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func (f Filter) parse(raw string) (any, error) {
	switch f.Kind {
	case FilterBool:
		return strconv.ParseBool(strings.ToLower(raw))
	case FilterInt:
		return strconv.Atoi(raw)
	case FilterDate:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t, nil
		}
		t, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return nil, err
		}
		if f.Op == "<=" {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return t, nil
	default:
		return raw, nil
	}
}

// orderBy applies the requested ordering, silently dropping fields that are
// not whitelisted. With nothing usable the default ordering applies.
// The primary key is always the final tiebreak.
func (s ListSpec) orderBy(db *gorm.DB, ordering string) *gorm.DB {
	var fields []string
	for _, f := range strings.Split(ordering, ",") {
		f = strings.TrimSpace(f)
		if s.allowsOrdering(strings.TrimPrefix(f, "-")) {
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		fields = s.Default
	}

	columns := make([]clause.OrderByColumn, 0, len(fields)+1)
	for _, f := range fields {
		desc := strings.HasPrefix(f, "-")
		columns = append(columns, clause.OrderByColumn{
			Column: clause.Column{Name: strings.TrimPrefix(f, "-")},
			Desc:   desc,
		})
	}
	columns = append(columns, clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	return db.Order(clause.OrderBy{Columns: columns})
}

func (s ListSpec) allowsOrdering(field string) bool {
	for _, allowed := range s.Ordering {
		if allowed == field {
			return true
		}
	}
	return false
}
