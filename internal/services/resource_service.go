package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hometrack/hometrack-api/internal/constants"
	"github.com/hometrack/hometrack-api/internal/models"
	"github.com/hometrack/hometrack-api/internal/repository"
	"github.com/hometrack/hometrack-api/internal/validation"
)

var (
	ErrNotFound        = errors.New("resource not found")
	ErrDuplicate       = errors.New("resource already exists")
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingOwner    = errors.New("owner is required")
	ErrViewUnsupported = errors.New("view is not supported by this resource")
)

// EmptyViewError is returned when a derived view matches nothing. It wraps
// ErrNotFound.
type EmptyViewError struct {
	Message string
}

func (e *EmptyViewError) Error() string {
	return e.Message
}

func (e *EmptyViewError) Unwrap() error {
	return ErrNotFound
}

// ListOptions restricts a listing. A zero Limit returns everything.
type ListOptions struct {
	Limit  int
	Offset int
}

// ResourceOption customizes a ResourceService
type ResourceOption func(*resourceConfig)

type resourceConfig struct {
	now   func() time.Time
	newID func() string
}

// WithClock overrides the time source used for timestamps and the
// near-expiry window.
func WithClock(now func() time.Time) ResourceOption {
	return func(c *resourceConfig) {
		c.now = now
	}
}

// WithIDGenerator overrides how document ids are generated.
func WithIDGenerator(newID func() string) ResourceOption {
	return func(c *resourceConfig) {
		c.newID = newID
	}
}

// ResourceService implements the CRUD contract shared by every household
// resource. P is the pointer type of T and is inferred by the constructor.
type ResourceService[T any, P interface {
	*T
	models.Document
}] struct {
	def   ResourceDefinition
	repo  repository.Repository[T]
	now   func() time.Time
	newID func() string
}

// NewResourceService creates a ResourceService for the given definition
func NewResourceService[T any, P interface {
	*T
	models.Document
}](def ResourceDefinition, repo repository.Repository[T], opts ...ResourceOption) *ResourceService[T, P] {
	cfg := resourceConfig{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &ResourceService[T, P]{
		def:   def,
		repo:  repo,
		now:   cfg.now,
		newID: cfg.newID,
	}
}

// Definition returns the resource definition
func (s *ResourceService[T, P]) Definition() ResourceDefinition {
	return s.def
}

// Create rejects documents whose duplicate key matches an existing document
// of the same owner, then stamps and stores doc.
func (s *ResourceService[T, P]) Create(ctx context.Context, ownerID string, doc *T) (*T, error) {
	q, err := s.scope(ownerID)
	if err != nil {
		return nil, err
	}

	p := P(doc)
	normalize(p)
	if err := validation.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	_, err = s.repo.First(ctx, q.Where(repository.EqualsAll(p.DuplicateKey())...))
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %s", ErrDuplicate, s.def.Name)
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("failed to check duplicates: %w", err)
	}

	now := s.now().UTC()
	meta := p.Meta()
	meta.ID = s.newID()
	meta.CreatedAt = now
	meta.UpdatedAt = now
	if s.def.OwnerScoped {
		p.Owner().UserID = ownerID
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, s.def.Name)
		}
		return nil, fmt.Errorf("failed to create %s: %w", s.def.Name, err)
	}

	return doc, nil
}

// List returns the owner's documents, most recently updated first
func (s *ResourceService[T, P]) List(ctx context.Context, ownerID string, opts ListOptions) ([]T, error) {
	q, err := s.scope(ownerID)
	if err != nil {
		return nil, err
	}
	q.Limit = opts.Limit
	q.Offset = opts.Offset

	docs, err := s.repo.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.def.Name, err)
	}
	return docs, nil
}

// Get returns a single document. Documents of other owners are reported as
// not found.
func (s *ResourceService[T, P]) Get(ctx context.Context, ownerID, id string) (*T, error) {
	q, err := s.scope(ownerID)
	if err != nil {
		return nil, err
	}
	q.ID = id

	doc, err := s.repo.First(ctx, q)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.def.Name)
		}
		return nil, fmt.Errorf("failed to get %s: %w", s.def.Name, err)
	}
	return doc, nil
}

// Update merges the JSON object patch onto the stored document. Fields absent
// from the patch keep their values; id, owner and creation time never change.
func (s *ResourceService[T, P]) Update(ctx context.Context, ownerID, id string, patch []byte) (*T, error) {
	doc, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	p := P(doc)
	meta := *p.Meta()
	owner := *p.Owner()

	if err := json.Unmarshal(patch, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	p.Meta().ID = meta.ID
	p.Meta().CreatedAt = meta.CreatedAt
	p.Meta().UpdatedAt = s.now().UTC()
	*p.Owner() = owner

	normalize(p)
	if err := validation.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	q, _ := s.scope(ownerID)
	q.ID = meta.ID
	if err := s.repo.Replace(ctx, q, doc); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.def.Name)
		case errors.Is(err, repository.ErrDuplicateKey):
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, s.def.Name)
		}
		return nil, fmt.Errorf("failed to update %s: %w", s.def.Name, err)
	}

	return doc, nil
}

// Delete removes a document and returns it as it was before deletion
func (s *ResourceService[T, P]) Delete(ctx context.Context, ownerID, id string) (*T, error) {
	doc, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	q, _ := s.scope(ownerID)
	q.ID = id
	if err := s.repo.Delete(ctx, q); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.def.Name)
		}
		return nil, fmt.Errorf("failed to delete %s: %w", s.def.Name, err)
	}

	return doc, nil
}

// LowStock returns documents whose quantity is at or below their minimum level
func (s *ResourceService[T, P]) LowStock(ctx context.Context, ownerID string) ([]T, error) {
	return s.view(ctx, ownerID, ViewLowStock, "No low stock items found",
		repository.LTEField("quantity", "minimum_level"))
}

// NearExpiry returns documents expiring within the near-expiry window,
// including those that have already expired.
func (s *ResourceService[T, P]) NearExpiry(ctx context.Context, ownerID string) ([]T, error) {
	cutoff := s.now().UTC().Add(constants.NearExpiryWindow)
	return s.view(ctx, ownerID, ViewNearExpiry, "No items close to expiry found",
		repository.LTE("expiry_date", cutoff))
}

// ByStore returns documents to be bought at store
func (s *ResourceService[T, P]) ByStore(ctx context.Context, ownerID, store string) ([]T, error) {
	return s.view(ctx, ownerID, ViewByStore, "No items found for this store",
		repository.Eq("store", store))
}

// HighPriority returns documents with priority High
func (s *ResourceService[T, P]) HighPriority(ctx context.Context, ownerID string) ([]T, error) {
	return s.view(ctx, ownerID, ViewHighPriority, "No high priority items found",
		repository.Eq("priority", string(models.PriorityHigh)))
}

func (s *ResourceService[T, P]) view(ctx context.Context, ownerID string, v View, emptyMessage string, conds ...repository.Condition) ([]T, error) {
	if !s.def.Views.Has(v) {
		return nil, fmt.Errorf("%w: %s", ErrViewUnsupported, s.def.Name)
	}

	q, err := s.scope(ownerID)
	if err != nil {
		return nil, err
	}

	docs, err := s.repo.Find(ctx, q.Where(conds...))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.def.Name, err)
	}
	if len(docs) == 0 {
		return nil, &EmptyViewError{Message: emptyMessage}
	}
	return docs, nil
}

func (s *ResourceService[T, P]) scope(ownerID string) (repository.Query, error) {
	q := repository.Query{SortDesc: "updated_at"}
	if s.def.OwnerScoped {
		if ownerID == "" {
			return q, ErrMissingOwner
		}
		q.OwnerID = ownerID
	}
	return q, nil
}

func normalize(doc any) {
	if n, ok := doc.(models.Normalizer); ok {
		n.Normalize()
	}
}
