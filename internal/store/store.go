// Package store persists computed scenarios in append order.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/mandate-cli/internal/model"
)

// Store is an append-only ordered list of scenarios. Saved entries are never
// edited or removed individually; Clear empties the whole list.
type Store interface {
	// Save appends a copy of s named "Scenario N", N being its 1-based
	// position. The append is atomic.
	Save(ctx context.Context, s model.Scenario) (*model.StoredScenario, error)
	// List returns all saved scenarios in insertion order.
	List(ctx context.Context) ([]model.StoredScenario, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error

	// Lifecycle
	Ping(ctx context.Context) error
	Migrate(ctx context.Context) error
	Close() error
}

// MinCompare is the number of saved scenarios a comparison needs.
const MinCompare = 2

// Compare returns one comparison row per saved scenario. It fails with
// ErrInsufficientData when fewer than MinCompare scenarios are stored.
func Compare(ctx context.Context, st Store) ([]model.ComparisonRow, error) {
	list, err := st.List(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "store: compare")
	}
	if len(list) < MinCompare {
		return nil, eris.Wrapf(model.ErrInsufficientData,
			"need at least %d saved scenarios, have %d", MinCompare, len(list))
	}
	rows := make([]model.ComparisonRow, len(list))
	for i, s := range list {
		rows[i] = s.Row()
	}
	return rows, nil
}

// copyScenario returns a shallow copy of s whose notice slice is not shared
// with the caller.
func copyScenario(s model.Scenario) model.Scenario {
	if s.Notices != nil {
		s.Notices = append([]model.Notice(nil), s.Notices...)
	}
	return s
}
