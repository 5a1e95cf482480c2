// Package orderingtest provides an in-memory repository double for the
// ordered families. Use-case and engine tests run against it instead of
// Postgres.
package orderingtest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"portfolio-api/internal/application/ordering"
	"portfolio-api/internal/domain/collection"
	"portfolio-api/pkg/apperror"
)

// Entity is what the fake needs from a stored value: the engine's view plus
// the validated position setter every ordered entity carries.
type Entity interface {
	ordering.Sequenced
	Move(newIndex int) error
}

// Repo is an in-memory collection.NamedRepository. A nil nameOf disables the
// name lookups, which then always report absent.
type Repo[T Entity] struct {
	mu     sync.Mutex
	items  map[uuid.UUID]T
	nameOf func(T) string

	SaveErr    error
	ReorderErr error
}

func NewRepo[T Entity](nameOf func(T) string) *Repo[T] {
	return &Repo[T]{items: make(map[uuid.UUID]T), nameOf: nameOf}
}

// Seed stores entities without the error hooks getting in the way.
func (r *Repo[T]) Seed(entities ...T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range entities {
		r.items[e.EntityID()] = e
	}
}

func (r *Repo[T]) Save(_ context.Context, entity T) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[entity.EntityID()] = entity
	return nil
}

func (r *Repo[T]) Update(_ context.Context, entity T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[entity.EntityID()]; !ok {
		return apperror.NewNotFound("entity", entity.EntityID().String())
	}
	r.items[entity.EntityID()] = entity
	return nil
}

func (r *Repo[T]) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *Repo[T]) FindByID(_ context.Context, id uuid.UUID) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entity, ok := r.items[id]
	if !ok {
		var zero T
		return zero, apperror.NewNotFound("entity", id.String())
	}
	return entity, nil
}

func (r *Repo[T]) List(_ context.Context, opts collection.ListOptions) ([]T, error) {
	opts = opts.Normalize()
	all := r.snapshot(uuid.Nil, true)
	if opts.Skip >= len(all) {
		return nil, nil
	}
	all = all[opts.Skip:]
	if len(all) > opts.Limit {
		all = all[:opts.Limit]
	}
	return all, nil
}

func (r *Repo[T]) Count(_ context.Context, ownerID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.items {
		if e.Owner() == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *Repo[T]) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.items[id]
	return ok, nil
}

func (r *Repo[T]) FindByOrderIndex(_ context.Context, ownerID uuid.UUID, index int) (T, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.items {
		if e.Owner() == ownerID && e.Position() == index {
			return e, true, nil
		}
	}
	var zero T
	return zero, false, nil
}

func (r *Repo[T]) ListByOwner(_ context.Context, ownerID uuid.UUID, ascending bool) ([]T, error) {
	return r.snapshot(ownerID, ascending), nil
}

// Reorder mirrors the storage-side shift: moving down decrements the entities
// in (old, new], moving up increments [new, old), then the target lands on
// newIndex.
func (r *Repo[T]) Reorder(_ context.Context, ownerID, id uuid.UUID, newIndex int) error {
	if r.ReorderErr != nil {
		return r.ReorderErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	target, ok := r.items[id]
	if !ok || target.Owner() != ownerID {
		return apperror.NewNotFound("entity", id.String())
	}
	oldIndex := target.Position()
	if oldIndex == newIndex {
		return nil
	}

	for _, e := range r.items {
		if e.Owner() != ownerID || e.EntityID() == id {
			continue
		}
		pos := e.Position()
		switch {
		case newIndex > oldIndex && pos > oldIndex && pos <= newIndex:
			if err := e.Move(pos - 1); err != nil {
				return err
			}
		case newIndex < oldIndex && pos >= newIndex && pos < oldIndex:
			if err := e.Move(pos + 1); err != nil {
				return err
			}
		}
	}
	return target.Move(newIndex)
}

func (r *Repo[T]) ExistsByName(_ context.Context, ownerID uuid.UUID, name string) (bool, error) {
	_, ok, err := r.FindByName(context.Background(), ownerID, name)
	return ok, err
}

func (r *Repo[T]) FindByName(_ context.Context, ownerID uuid.UUID, name string) (T, bool, error) {
	var zero T
	if r.nameOf == nil {
		return zero, false, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.items {
		if e.Owner() == ownerID && strings.EqualFold(r.nameOf(e), name) {
			return e, true, nil
		}
	}
	return zero, false, nil
}

func (r *Repo[T]) snapshot(ownerID uuid.UUID, ascending bool) []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, 0, len(r.items))
	for _, e := range r.items {
		if ownerID != uuid.Nil && e.Owner() != ownerID {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if ascending {
			return out[i].Position() < out[j].Position()
		}
		return out[i].Position() > out[j].Position()
	})
	return out
}
