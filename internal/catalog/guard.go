package catalog

import (
	"context"
	"errors"

	"github.com/prabinsunar/library-app/internal/entities"
	"github.com/prabinsunar/library-app/internal/parallel"
)

// DeleteState is the outcome of a delete inspection or commit.
type DeleteState int

const (
	// DeleteAbsent means the target does not exist; callers redirect to the listing.
	DeleteAbsent DeleteState = iota
	// DeleteBlocked means dependents still reference the target.
	DeleteBlocked
	// DeleteConfirmable means nothing references the target and it may be deleted.
	DeleteConfirmable
	// DeleteDone means the target was deleted.
	DeleteDone
)

func (s DeleteState) String() string {
	switch s {
	case DeleteAbsent:
		return "absent"
	case DeleteBlocked:
		return "blocked"
	case DeleteConfirmable:
		return "confirmable"
	case DeleteDone:
		return "deleted"
	default:
		return "unknown"
	}
}

// Inspection is what a delete request found for a target of type T with dependents of type D.
type Inspection[T, D any] struct {
	State      DeleteState
	Target     *T
	Dependents []D
}

// Guard refuses to delete a record while dependents reference it.
type Guard[T, D any] struct {
	Load       func(ctx context.Context, id string) (*T, error)
	Dependents func(ctx context.Context, id string) ([]D, error)
	// Delete must only delete when no dependent exists at the time it runs,
	// reporting whether a row was removed.
	Delete func(ctx context.Context, id string) (bool, error)
}

// Inspect loads the target and its dependents concurrently. It never deletes.
func (g Guard[T, D]) Inspect(ctx context.Context, id string) (*Inspection[T, D], error) {
	var (
		target     *T
		dependents []D
	)
	err := parallel.Run(
		func() error {
			t, err := g.Load(ctx, id)
			if errors.Is(err, entities.ErrNotFound) {
				return nil
			}
			target = t
			return err
		},
		func() error {
			d, err := g.Dependents(ctx, id)
			dependents = d
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	switch {
	case target == nil:
		return &Inspection[T, D]{State: DeleteAbsent}, nil
	case len(dependents) > 0:
		return &Inspection[T, D]{State: DeleteBlocked, Target: target, Dependents: dependents}, nil
	default:
		return &Inspection[T, D]{State: DeleteConfirmable, Target: target, Dependents: []D{}}, nil
	}
}

// Commit deletes the target when nothing references it. When the delete
// removes nothing, the target is inspected again to tell an absent target
// from a blocked one.
func (g Guard[T, D]) Commit(ctx context.Context, id string) (*Inspection[T, D], error) {
	const attempts = 2
	for attempt := 1; ; attempt++ {
		deleted, err := g.Delete(ctx, id)
		if err != nil {
			return nil, err
		}
		if deleted {
			return &Inspection[T, D]{State: DeleteDone}, nil
		}

		inspection, err := g.Inspect(ctx, id)
		if err != nil {
			return nil, err
		}
		// A confirmable result means the last dependent went away after the delete ran.
		if inspection.State != DeleteConfirmable || attempt == attempts {
			return inspection, nil
		}
	}
}
