package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/validation"
)

const (
	adminPageSize     = 100
	maxAdminBodyBytes = 1 << 20
)

type fieldset struct {
	Name    string   `json:"name"`
	Fields  []string `json:"fields"`
	Classes []string `json:"classes,omitempty"`
}

// adminOptions describes how the console presents one model.
type adminOptions struct {
	Name           string     `json:"name"`
	VerboseName    string     `json:"verbose_name"`
	ListDisplay    []string   `json:"list_display"`
	ListFilter     []string   `json:"list_filter"`
	SearchFields   []string   `json:"search_fields"`
	ListEditable   []string   `json:"list_editable"`
	ReadonlyFields []string   `json:"readonly_fields"`
	DateHierarchy  string     `json:"date_hierarchy,omitempty"`
	Ordering       []string   `json:"ordering"`
	Fieldsets      []fieldset `json:"fieldsets,omitempty"`
}

type AdminMeta struct {
	adminOptions
	CanAdd    bool `json:"can_add"`
	CanDelete bool `json:"can_delete"`
}

type adminResource interface {
	meta(ctx context.Context) (AdminMeta, error)
	mount(r chi.Router)
}

// modelAdmin is the CRUD console for one model type.
type modelAdmin[T any] struct {
	adminOptions
	responder Responder
	logger    zerolog.Logger
	store     *database.Store[T]
	spec      database.ListSpec
	find      []database.Scope
	serialize func(*T) any

	// canAdd gates creation; nil allows it.
	canAdd    func(ctx context.Context) (bool, error)
	deletable bool
	// add and remove override the store's insert and delete.
	add    func(ctx context.Context, item *T) error
	remove func(ctx context.Context, id uint) error
}

func newModelAdmin[T any](opts adminOptions, store *database.Store[T], filters map[string]database.Filter, serialize func(*T) any) *modelAdmin[T] {
	logger := log.With().Str("handlerName", "admin").Str("model", opts.Name).Logger()

	if filters == nil {
		filters = map[string]database.Filter{}
	}
	if dh := opts.DateHierarchy; dh != "" {
		filters[dh+"__gte"] = database.Filter{Column: dh, Kind: database.FilterDate, Op: ">="}
		filters[dh+"__lte"] = database.Filter{Column: dh, Kind: database.FilterDate, Op: "<="}
	}
	ordering := append([]string{"id"}, opts.ListDisplay...)
	if opts.DateHierarchy != "" {
		ordering = append(ordering, opts.DateHierarchy)
	}

	return &modelAdmin[T]{
		adminOptions: opts,
		responder:    NewResponder(logger),
		logger:       logger,
		store:        store,
		spec: database.ListSpec{
			Filters:  filters,
			Search:   opts.SearchFields,
			Ordering: ordering,
			Default:  opts.Ordering,
		},
		serialize: serialize,
		deletable: true,
	}
}

func (a *modelAdmin[T]) meta(ctx context.Context) (AdminMeta, error) {
	canAdd := true
	if a.canAdd != nil {
		var err error
		if canAdd, err = a.canAdd(ctx); err != nil {
			return AdminMeta{}, err
		}
	}
	return AdminMeta{adminOptions: a.adminOptions, CanAdd: canAdd, CanDelete: a.deletable}, nil
}

func (a *modelAdmin[T]) mount(r chi.Router) {
	r.Route("/"+a.Name, func(r chi.Router) {
		r.Get("/", a.list())
		r.Post("/", a.create())
		r.Get("/meta", a.describe())
		r.Get("/{id}", a.get())
		r.Put("/{id}", a.update())
		r.Patch("/{id}", a.patch())
		r.Delete("/{id}", a.delete())
	})
}

func (a *modelAdmin[T]) serializeAll(items []T) []any {
	return mapSlice(items, a.serialize)
}

func (a *modelAdmin[T]) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := listParams(r, true, adminPageSize)
		if err != nil {
			a.responder.WriteError(w, err)
			return
		}

		items, total, err := a.store.List(r.Context(), database.Query{
			Spec:   a.spec,
			Params: params,
			Find:   a.find,
		})
		if err != nil {
			a.responder.WriteError(w, wrapDatabaseError("list", a.Name, err))
			return
		}
		a.responder.writeList(w, r, params, total, a.serializeAll(items))
	}
}

func (a *modelAdmin[T]) describe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meta, err := a.meta(r.Context())
		if err != nil {
			a.responder.WriteError(w, wrapDatabaseError("describe", a.Name, err))
			return
		}
		a.responder.WriteJSON(w, meta)
	}
}

func (a *modelAdmin[T]) get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			a.responder.WriteError(w, err)
			return
		}
		item, err := a.store.Get(r.Context(), id, nil, a.find...)
		if err != nil {
			a.responder.WriteError(w, wrapDatabaseError("find", a.Name, err))
			return
		}
		a.responder.WriteJSON(w, a.serialize(item))
	}
}

func (a *modelAdmin[T]) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if a.canAdd != nil {
			ok, err := a.canAdd(ctx)
			if err != nil {
				a.responder.WriteError(w, wrapDatabaseError("check", a.Name, err))
				return
			}
			if !ok {
				a.responder.WriteError(w, errs.NewForbiddenError("adding "+a.VerboseName+" is not permitted"))
				return
			}
		}

		var item T
		if d, ok := any(&item).(models.Defaulter); ok {
			d.SetDefaults()
		}
		if _, err := a.decode(w, r, &item); err != nil {
			a.writeDecodeError(w, err)
			return
		}
		if fieldErrs := validation.Struct(&item); fieldErrs != nil {
			a.writeValidation(w, fieldErrs)
			return
		}

		add := a.store.Add
		if a.add != nil {
			add = a.add
		}
		if err := add(ctx, &item); err != nil {
			a.responder.WriteError(w, wrapDatabaseError("create", a.Name, err))
			return
		}
		if err := a.store.Reload(ctx, &item, a.find...); err != nil {
			a.responder.WriteError(w, wrapDatabaseError("reload", a.Name, err))
			return
		}

		a.logger.Info().Str("operator", ctxGetOperator(ctx)).Msg("Created record")
		a.responder.WriteJSONStatus(w, http.StatusCreated, a.serialize(&item))
	}
}

// update replaces every writable field. Fields missing from the body keep
// their stored values.
func (a *modelAdmin[T]) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := idParam(r, "id")
		if err != nil {
			a.responder.WriteError(w, err)
			return
		}
		item, err := a.store.FindByID(ctx, id)
		if err != nil {
			a.responder.WriteError(w, wrapDatabaseError("find", a.Name, err))
			return
		}

		if _, err := a.decode(w, r, item); err != nil {
			a.writeDecodeError(w, err)
			return
		}
		if fieldErrs := validation.Struct(item); fieldErrs != nil {
			a.writeValidation(w, fieldErrs)
			return
		}

		if err := a.store.Replace(ctx, id, item); err != nil {
			a.responder.WriteError(w, wrapDatabaseError("update", a.Name, err))
			return
		}
		updated, err := a.store.Get(ctx, id, nil, a.find...)
		if err != nil {
			a.responder.WriteError(w, wrapDatabaseError("reload", a.Name, err))
			return
		}

		a.logger.Info().Uint("id", id).Str("operator", ctxGetOperator(ctx)).Msg("Updated record")
		a.responder.WriteJSON(w, a.serialize(updated))
	}
}

// patch is the inline edit from the list view; only list_editable fields
// may be sent.
func (a *modelAdmin[T]) patch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := idParam(r, "id")
		if err != nil {
			a.responder.WriteError(w, err)
			return
		}
		item, err := a.store.FindByID(ctx, id)
		if err != nil {
			a.responder.WriteError(w, wrapDatabaseError("find", a.Name, err))
			return
		}

		fields, err := a.decode(w, r, item)
		if err != nil {
			a.writeDecodeError(w, err)
			return
		}
		if len(fields) == 0 {
			a.responder.WriteError(w, errs.NewBadRequestError("no fields to update"))
			return
		}
		for _, f := range fields {
			if !slices.Contains(a.ListEditable, f) {
				a.responder.WriteError(w, errs.NewInvalidFieldError(f, "not editable from the list view"))
				return
			}
		}
		if fieldErrs := validation.Fields(item, fields...); fieldErrs != nil {
			a.writeValidation(w, fieldErrs)
			return
		}

		if err := a.store.UpdateColumns(ctx, item, fields...); err != nil {
			a.responder.WriteError(w, wrapDatabaseError("update", a.Name, err))
			return
		}
		updated, err := a.store.Get(ctx, id, nil, a.find...)
		if err != nil {
			a.responder.WriteError(w, wrapDatabaseError("reload", a.Name, err))
			return
		}

		a.logger.Info().Uint("id", id).Strs("fields", fields).Str("operator", ctxGetOperator(ctx)).Msg("Patched record")
		a.responder.WriteJSON(w, a.serialize(updated))
	}
}

func (a *modelAdmin[T]) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if !a.deletable {
			a.responder.WriteError(w, errs.NewMethodNotAllowedError("deleting "+a.VerboseName+" is not permitted"))
			return
		}
		id, err := idParam(r, "id")
		if err != nil {
			a.responder.WriteError(w, err)
			return
		}

		remove := a.store.Delete
		if a.remove != nil {
			remove = a.remove
		}
		if err := remove(ctx, id); err != nil {
			a.responder.WriteError(w, wrapDatabaseError("delete", a.Name, err))
			return
		}

		a.logger.Info().Uint("id", id).Str("operator", ctxGetOperator(ctx)).Msg("Deleted record")
		a.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": a.VerboseName + " deleted successfully",
		})
	}
}

// decode applies the JSON object in the body to dst, ignoring the primary key
// and read-only fields, and returns the keys that were applied.
func (a *modelAdmin[T]) decode(w http.ResponseWriter, r *http.Request, dst *T) ([]string, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxAdminBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, errs.NewMaxBodySizeExceededError(maxErr.Limit)
		}
		return nil, errs.NewMalformedPayloadError("json", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, errs.NewInvalidJSONError(err)
	}
	delete(fields, "id")
	for _, ro := range a.ReadonlyFields {
		delete(fields, ro)
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	clean, err := json.Marshal(fields)
	if err != nil {
		return nil, errs.NewInvalidJSONError(err)
	}
	if err := json.Unmarshal(clean, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, validation.Errors{typeErr.Field: {typeMessage(typeErr.Type.Kind())}}
		}
		return nil, errs.NewInvalidJSONError(err)
	}
	return keys, nil
}

func (a *modelAdmin[T]) writeDecodeError(w http.ResponseWriter, err error) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		a.writeValidation(w, fieldErrs)
		return
	}
	a.responder.WriteError(w, err)
}

func (a *modelAdmin[T]) writeValidation(w http.ResponseWriter, fieldErrs validation.Errors) {
	a.responder.WriteJSONStatus(w, http.StatusBadRequest, map[string]any{
		"error":  "validation failed",
		"status": "error",
		"errors": fieldErrs,
	})
}
