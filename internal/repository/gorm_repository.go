package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRepository is a GORM implementation of Repository
type GormRepository[T any] struct {
	db *gorm.DB
}

// NewGormRepository creates a Repository backed by a relational database
func NewGormRepository[T any](db *gorm.DB) Repository[T] {
	return &GormRepository[T]{db: db}
}

// Create creates a new document
func (r *GormRepository[T]) Create(ctx context.Context, doc *T) error {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return translateGormError(err)
	}
	return nil
}

// First finds the first document matching the query
func (r *GormRepository[T]) First(ctx context.Context, q Query) (*T, error) {
	var doc T
	if err := r.scope(ctx, q).Take(&doc).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &doc, nil
}

// Find lists documents matching the query
func (r *GormRepository[T]) Find(ctx context.Context, q Query) ([]T, error) {
	query := r.scope(ctx, q)
	if q.SortDesc != "" {
		query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: q.SortDesc}, Desc: true})
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit).Offset(q.Offset)
	}

	docs := make([]T, 0)
	if err := query.Find(&docs).Error; err != nil {
		return nil, translateGormError(err)
	}
	if docs == nil {
		docs = []T{}
	}
	return docs, nil
}

// Replace writes every column of doc to the row matched by the query
func (r *GormRepository[T]) Replace(ctx context.Context, q Query, doc *T) error {
	result := r.scope(ctx, q).Select("*").Updates(doc)
	if result.Error != nil {
		return translateGormError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete hard deletes the row matched by the query
func (r *GormRepository[T]) Delete(ctx context.Context, q Query) error {
	result := r.scope(ctx, q).Delete(new(T))
	if result.Error != nil {
		return translateGormError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepository[T]) scope(ctx context.Context, q Query) *gorm.DB {
	db := r.db.WithContext(ctx).Model(new(T))
	if q.ID != "" {
		db = db.Where(clause.Eq{Column: clause.Column{Name: "id"}, Value: q.ID})
	}
	if q.OwnerID != "" {
		db = db.Where(clause.Eq{Column: clause.Column{Name: ownerField}, Value: q.OwnerID})
	}
	for _, cond := range q.Conditions {
		db = db.Where(gormExpression(cond))
	}
	return db
}

func gormExpression(cond Condition) clause.Expression {
	column := clause.Column{Name: cond.Field}
	switch cond.Op {
	case OpLTE:
		return clause.Lte{Column: column, Value: cond.Value}
	case OpLTEField:
		return clause.Lte{Column: column, Value: clause.Column{Name: fmt.Sprint(cond.Value)}}
	default:
		return clause.Eq{Column: column, Value: cond.Value}
	}
}

func translateGormError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(err.Error(), "UNIQUE constraint failed"),
		strings.Contains(err.Error(), "duplicate key"):
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	default:
		return err
	}
}
