package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// reservedParams are query keys that never act as column filters.
var reservedParams = map[string]bool{
	"search":    true,
	"ordering":  true,
	"page":      true,
	"page_size": true,
}

// listParams reads filters, search, ordering and paging from the query
// string. Paging is only enabled when "page" is present unless
// alwaysPaginate is set.
func listParams(r *http.Request, alwaysPaginate bool, pageSize int) (database.ListParams, error) {
	q := r.URL.Query()
	params := database.ListParams{
		Filters:  map[string]string{},
		Search:   q.Get("search"),
		Ordering: q.Get("ordering"),
	}
	for key, values := range q {
		if !reservedParams[key] && len(values) > 0 {
			params.Filters[key] = values[0]
		}
	}

	if !alwaysPaginate && !q.Has("page") {
		return params, nil
	}

	params.Page = 1
	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return params, errs.NewNotFoundError("invalid page")
		}
		params.Page = page
	}

	params.PageSize = pageSize
	if raw := q.Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			return params, errs.NewInvalidFieldError("page_size", "must be a positive integer")
		}
		params.PageSize = min(size, maxPageSize)
	}
	return params, nil
}

// Page is the envelope for paginated listings.
type Page struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

func newPage(r *http.Request, params database.ListParams, total int64, results any) Page {
	page := Page{Count: total, Results: results}
	if params.Page*params.PageSize < int(total) {
		page.Next = pageLink(r.URL, params.Page+1)
	}
	if params.Page > 1 {
		page.Previous = pageLink(r.URL, params.Page-1)
	}
	return page
}

func pageLink(u *url.URL, page int) *string {
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	link := u.Path + "?" + q.Encode()
	return &link
}

// writeList renders results as a Page when paging was requested and as a bare
// array otherwise. A page past the end is not found.
func (r Responder) writeList(w http.ResponseWriter, req *http.Request, params database.ListParams, total int64, results any) {
	if params.PageSize == 0 {
		r.WriteJSON(w, results)
		return
	}
	if params.Page > 1 && int64((params.Page-1)*params.PageSize) >= total {
		r.WriteError(w, errs.NewNotFoundError("invalid page"))
		return
	}
	r.WriteJSON(w, newPage(req, params, total, results))
}

// idParam parses a numeric path parameter. Anything else is reported as not
// found since no row can match it.
func idParam(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 0)
	if err != nil || id == 0 {
		return 0, errs.NewNotFoundError("no record matches " + name)
	}
	return uint(id), nil
}
