// Package services provides application-level services that orchestrate
// business logic and coordinate between repositories and domain entities.
package services

import (
	"context"
	"fmt"

	"github.com/royalacademy/academy-go/internal/domain/collection"
	"github.com/royalacademy/academy-go/internal/domain/entities/content"
	persistence "github.com/royalacademy/academy-go/internal/infrastructure/persistence/content"
	"github.com/royalacademy/academy-go/internal/infrastructure/security"
)

// Normalizer adjusts an item before it is committed (icon fallback, image
// re-encoding). It may reject the item outright.
type Normalizer[T content.Item] func(ctx context.Context, item T) (T, error)

// DeleteGuard can veto a delete while other items still reference the
// victim. Returning ErrStillReferenced surfaces as a conflict.
type DeleteGuard[T content.Item] func(ctx context.Context, victim T) error

// ErrStillReferenced marks a delete refused because other items still point
// at the victim.
var ErrStillReferenced = fmt.Errorf("still referenced by other items")

// CollectionService orchestrates one collection domain over its cache-first
// repository. Create and Update run through the draft editor so commit
// semantics (validate, append or replace-by-id, id preservation) hold no
// matter which surface drives them.
type CollectionService[T content.Item] struct {
	repo      *persistence.Repository[T]
	validate  collection.Validator[T]
	withID    func(item T, id string) T
	normalize Normalizer[T]
	guard     DeleteGuard[T]
}

// NewCollectionService creates a service for one collection domain. withID
// must return a copy of item carrying the given id. normalize and guard may
// be nil.
func NewCollectionService[T content.Item](
	repo *persistence.Repository[T],
	validate collection.Validator[T],
	withID func(item T, id string) T,
	normalize Normalizer[T],
	guard DeleteGuard[T],
) *CollectionService[T] {
	return &CollectionService[T]{
		repo:      repo,
		validate:  validate,
		withID:    withID,
		normalize: normalize,
		guard:     guard,
	}
}

// BucketKey returns the bucket key this service serves.
func (s *CollectionService[T]) BucketKey() string { return s.repo.BucketKey() }

// GetAll returns the whole collection (cache-first).
func (s *CollectionService[T]) GetAll(ctx context.Context) ([]T, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", s.repo.BucketKey(), err)
	}
	return items, nil
}

// GetByID returns one item, or a wrapped collection.ErrNotFound.
func (s *CollectionService[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	if id == "" {
		return zero, &collection.ValidationError{Field: "id", Reason: "must not be empty"}
	}
	return s.repo.FindByID(ctx, id)
}

// Create commits a creating draft: a fresh ULID is assigned, the item is
// normalized and validated, then appended and persisted. The stored item is
// returned so the caller sees the assigned id.
func (s *CollectionService[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T

	draft := s.withID(item, security.GenerateItemID())
	draft, err := s.applyNormalize(ctx, draft)
	if err != nil {
		return zero, err
	}

	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return zero, err
	}

	editor := collection.NewEditor(s.validate)
	editor.BeginCreate(draft)
	merged, err := editor.Commit(items)
	if err != nil {
		return zero, err
	}

	if err := s.repo.ReplaceAll(ctx, merged); err != nil {
		return zero, err
	}
	return draft, nil
}

// Update commits an editing draft: the item must already exist, keeps its
// id, and fully replaces the stored element in place.
func (s *CollectionService[T]) Update(ctx context.Context, item T) (T, error) {
	var zero T
	if item.ItemID() == "" {
		return zero, &collection.ValidationError{Field: "id", Reason: "must not be empty"}
	}

	existing, err := s.repo.FindByID(ctx, item.ItemID())
	if err != nil {
		return zero, err
	}

	draft, err := s.applyNormalize(ctx, item)
	if err != nil {
		return zero, err
	}

	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return zero, err
	}

	editor := collection.NewEditor(s.validate)
	editor.BeginEdit(existing)
	if err := editor.Update(draft); err != nil {
		return zero, err
	}
	merged, err := editor.Commit(items)
	if err != nil {
		return zero, err
	}

	if err := s.repo.ReplaceAll(ctx, merged); err != nil {
		return zero, err
	}
	return draft, nil
}

// Delete removes one item by id. A configured guard can refuse the delete
// while references remain; everything else in the collection is untouched.
func (s *CollectionService[T]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &collection.ValidationError{Field: "id", Reason: "must not be empty"}
	}

	victim, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if s.guard != nil {
		if err := s.guard(ctx, victim); err != nil {
			return err
		}
	}

	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return err
	}
	remaining, err := collection.DeleteByID(items, id)
	if err != nil {
		return err
	}
	return s.repo.ReplaceAll(ctx, remaining)
}

// ReplaceAll persists a full replacement list, the raw save of the store
// contract. Every item is normalized and validated before the write.
func (s *CollectionService[T]) ReplaceAll(ctx context.Context, items []T) error {
	normalized := make([]T, 0, len(items))
	for _, item := range items {
		item, err := s.applyNormalize(ctx, item)
		if err != nil {
			return err
		}
		if s.validate != nil {
			if err := s.validate(item); err != nil {
				return err
			}
		}
		normalized = append(normalized, item)
	}
	return s.repo.ReplaceAll(ctx, normalized)
}

func (s *CollectionService[T]) applyNormalize(ctx context.Context, item T) (T, error) {
	if s.normalize == nil {
		return item, nil
	}
	return s.normalize(ctx, item)
}
