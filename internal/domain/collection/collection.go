// Package collection defines the persistence ports shared by all
// profile-owned families, plus the field rules every entity applies.
package collection

import (
	"context"

	"github.com/google/uuid"
)

const (
	MaxLimit     = 1000
	DefaultLimit = 100
)

// ListOptions is the pagination contract for flat listings. Skip is clamped
// to >= 0 and Limit to [1, MaxLimit] by Normalize.
type ListOptions struct {
	Skip      int
	Limit     int
	SortBy    string
	Ascending bool
}

func (o ListOptions) Normalize() ListOptions {
	if o.Skip < 0 {
		o.Skip = 0
	}
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.Limit > MaxLimit {
		o.Limit = MaxLimit
	}
	return o
}

// Repository is the base contract every entity family implements.
type Repository[T any] interface {
	Save(ctx context.Context, entity T) error
	Update(ctx context.Context, entity T) error
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (T, error)
	List(ctx context.Context, opts ListOptions) ([]T, error)
	Count(ctx context.Context, ownerID uuid.UUID) (int, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// OrderedRepository serves families totally ordered by order_index.
type OrderedRepository[T any] interface {
	Repository[T]
	// FindByOrderIndex reports whether the slot is occupied for the owner.
	FindByOrderIndex(ctx context.Context, ownerID uuid.UUID, index int) (T, bool, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, ascending bool) ([]T, error)
	// Reorder moves one entity to newIndex and shifts the intervening
	// neighbours by one, inside a single storage transaction.
	Reorder(ctx context.Context, ownerID, id uuid.UUID, newIndex int) error
}

// NamedRepository adds the per-owner name uniqueness lookups used by
// skills and tools.
type NamedRepository[T any] interface {
	OrderedRepository[T]
	ExistsByName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error)
	FindByName(ctx context.Context, ownerID uuid.UUID, name string) (T, bool, error)
}
