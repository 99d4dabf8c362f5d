package database

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the generic single-table CRUD used by the repos and the admin
// console. Every method is a single statement; there is no cross-row locking.
type Store[T any] struct {
	db *gorm.DB
}

func NewStore[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (s *Store[T]) GetDB() *gorm.DB {
	return s.db
}

// List runs q and returns the page of rows plus the total number of matching
// rows. Without a page size every matching row is returned.
func (s *Store[T]) List(ctx context.Context, q Query) ([]T, int64, error) {
	base := s.db.WithContext(ctx).Model(new(T)).Scopes(q.Where...)
	base, err := q.Spec.filter(base, q.Params)
	if err != nil {
		return nil, 0, err
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if q.Params.PageSize > 0 {
		if err := base.Count(&total).Error; err != nil {
			return nil, 0, err
		}
	}

	find := q.Spec.orderBy(base.Scopes(q.Find...), q.Params.Ordering)
	if q.Params.PageSize > 0 {
		page := q.Params.Page
		if page < 1 {
			page = 1
		}
		find = find.Offset((page - 1) * q.Params.PageSize).Limit(q.Params.PageSize)
	}

	var items []T
	if err := find.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	if q.Params.PageSize == 0 {
		total = int64(len(items))
	}
	return items, total, nil
}

// Get returns the row with the given id that also satisfies where.
func (s *Store[T]) Get(ctx context.Context, id uint, where []Scope, find ...Scope) (*T, error) {
	var item T
	err := s.db.WithContext(ctx).Scopes(where...).Scopes(find...).First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByID returns a row by its ID
func (s *Store[T]) FindByID(ctx context.Context, id uint, find ...Scope) (*T, error) {
	return s.Get(ctx, id, nil, find...)
}

// Reload refreshes item from the row matching its primary key.
func (s *Store[T]) Reload(ctx context.Context, item *T, find ...Scope) error {
	return s.db.WithContext(ctx).Scopes(find...).First(item).Error
}

func (s *Store[T]) Count(ctx context.Context, where ...Scope) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(new(T)).Scopes(where...).Count(&n).Error
	return n, err
}

// Add inserts a new row
func (s *Store[T]) Add(ctx context.Context, item *T) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error
}

// Replace overwrites every writable column of row id with item. Columns named
// in omit and create-only columns are left untouched.
func (s *Store[T]) Replace(ctx context.Context, id uint, item *T, omit ...string) error {
	omit = append(omit, "id", clause.Associations)
	res := s.db.WithContext(ctx).Model(new(T)).
		Where(clause.Eq{Column: clause.PrimaryColumn, Value: id}).
		Select("*").Omit(omit...).
		Updates(item)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateColumns writes only the named columns of item, which must carry its
// primary key. Auto-update timestamps are refreshed by gorm.
func (s *Store[T]) UpdateColumns(ctx context.Context, item *T, columns ...string) error {
	res := s.db.WithContext(ctx).Model(item).Select(columns).Updates(item)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a row by id
func (s *Store[T]) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
