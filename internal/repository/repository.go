package repository

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no document matches a query.
	ErrNotFound = errors.New("repository: document not found")
	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("repository: duplicate key")
)

// Repository defines document access shared by every resource.
// Implementations exist for gorm (sqlite, postgres, mysql) and MongoDB.
type Repository[T any] interface {
	// Create inserts a new document
	Create(ctx context.Context, doc *T) error

	// First returns the first document matching the query or ErrNotFound
	First(ctx context.Context, q Query) (*T, error)

	// Find returns every document matching the query. The result is never nil.
	Find(ctx context.Context, q Query) ([]T, error)

	// Replace overwrites the single document matched by the query
	Replace(ctx context.Context, q Query, doc *T) error

	// Delete removes the single document matched by the query
	Delete(ctx context.Context, q Query) error
}

// Op is a comparison operator understood by every backend.
type Op int

const (
	OpEq Op = iota
	OpLTE
	// OpLTEField compares a field against another field of the same document.
	OpLTEField
)

// Condition restricts a query on a single field.
type Condition struct {
	Field string
	Op    Op
	Value any
}

// Eq matches documents whose field equals value. A nil value matches null.
func Eq(field string, value any) Condition {
	return Condition{Field: field, Op: OpEq, Value: value}
}

// LTE matches documents whose field is less than or equal to value.
func LTE(field string, value any) Condition {
	return Condition{Field: field, Op: OpLTE, Value: value}
}

// LTEField matches documents where field <= other.
func LTEField(field, other string) Condition {
	return Condition{Field: field, Op: OpLTEField, Value: other}
}

// Query selects documents. Field names are storage column names, which are
// identical to the bson keys.
type Query struct {
	ID         string
	OwnerID    string
	Conditions []Condition
	SortDesc   string
	Limit      int
	Offset     int
}

// Where returns a copy of q with the given conditions appended.
func (q Query) Where(conds ...Condition) Query {
	merged := make([]Condition, 0, len(q.Conditions)+len(conds))
	merged = append(merged, q.Conditions...)
	merged = append(merged, conds...)
	q.Conditions = merged
	return q
}

// EqualsAll turns a column/value map into equality conditions.
func EqualsAll(values map[string]any) []Condition {
	conds := make([]Condition, 0, len(values))
	for field, value := range values {
		conds = append(conds, Eq(field, value))
	}
	return conds
}

const (
	ownerField = "user_id"
)
