// Package ordering keeps each profile-owned family a valid ordered sequence:
// no duplicate order_index per owner, and reorders that shift the intervening
// neighbours exactly one position.
package ordering

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"portfolio-api/internal/domain/collection"
	"portfolio-api/pkg/apperror"
)

// Sequenced is the slice of an entity the engine needs to see.
type Sequenced interface {
	EntityID() uuid.UUID
	Owner() uuid.UUID
	Position() int
}

// Engine wraps an ordered repository with the family-level invariant checks.
// One engine instance exists per family; all of them share the process-wide
// Locks so concurrent reorders on the same (owner, family) are serialized.
type Engine[T Sequenced] struct {
	family string
	repo   collection.OrderedRepository[T]
	locks  *Locks
}

func NewEngine[T Sequenced](family string, repo collection.OrderedRepository[T], locks *Locks) *Engine[T] {
	return &Engine[T]{family: family, repo: repo, locks: locks}
}

// EnsureFreeSlot fails with a business-rule violation when the requested
// order_index is already taken for the owner. Called before constructing the
// entity on add.
func (e *Engine[T]) EnsureFreeSlot(ctx context.Context, ownerID uuid.UUID, index int) error {
	if index < 0 {
		return apperror.NewValidation("order_index", "order_index must be >= 0")
	}
	_, taken, err := e.repo.FindByOrderIndex(ctx, ownerID, index)
	if err != nil {
		return err
	}
	if taken {
		return apperror.NewBusinessRule("order_index must be unique per profile", "order_index", index)
	}
	return nil
}

// Reorder moves the entity to newIndex. Missing entity and same-index moves
// are no-ops, and a target past the current tail clamps to the tail slot so
// the sequence stays contiguous. The repository performs the shift and the
// final update in one storage transaction; the lock closes the window between
// our read of the current position and that transaction.
func (e *Engine[T]) Reorder(ctx context.Context, ownerID, id uuid.UUID, newIndex int) error {
	if newIndex < 0 {
		return apperror.NewValidation("order_index", "order_index must be >= 0")
	}

	release := e.locks.Acquire(ownerID, e.family)
	defer release()

	entity, err := e.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil
		}
		return err
	}
	if entity.Owner() != ownerID {
		return nil
	}

	peers, err := e.repo.ListByOwner(ctx, ownerID, false)
	if err != nil {
		return err
	}
	if len(peers) > 0 && newIndex > peers[0].Position() {
		newIndex = peers[0].Position()
	}
	if entity.Position() == newIndex {
		return nil
	}

	return e.repo.Reorder(ctx, ownerID, id, newIndex)
}

// List returns the owner's family ordered by order_index.
func (e *Engine[T]) List(ctx context.Context, ownerID uuid.UUID, ascending bool) ([]T, error) {
	return e.repo.ListByOwner(ctx, ownerID, ascending)
}
