package seed

import (
	"context"
	"fmt"

	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
)

// referenceMap translates the ids CSV rows use to refer to each other into
// store ids. Entities imported in the current run are translated through
// the recorded mapping; for anything else the CSV value is taken to be a
// store id already.
type referenceMap struct {
	ids map[domain.Entity]map[int64]int64
}

func newReferenceMap() *referenceMap {
	return &referenceMap{ids: make(map[domain.Entity]map[int64]int64)}
}

// begin marks entity as loaded in this run. Rows that never get recorded
// (failed rows) then no longer resolve.
func (m *referenceMap) begin(entity domain.Entity) {
	m.ids[entity] = make(map[int64]int64)
}

func (m *referenceMap) record(entity domain.Entity, sourceID, storeID int64) {
	if ids, ok := m.ids[entity]; ok {
		ids[sourceID] = storeID
	}
}

func (m *referenceMap) translate(entity domain.Entity, sourceID int64) (int64, bool) {
	ids, loaded := m.ids[entity]
	if !loaded {
		return sourceID, true
	}
	id, ok := ids[sourceID]
	return id, ok
}

// resolve is translate plus an existence check against the store for
// entities not loaded in this run.
func (m *referenceMap) resolve(ctx context.Context, entity domain.Entity, sourceID int64, exists func(context.Context, int64) (bool, error)) (int64, error) {
	if _, loaded := m.ids[entity]; loaded {
		if id, ok := m.translate(entity, sourceID); ok {
			return id, nil
		}
		return 0, fmt.Errorf("%w: %s %d", domain.ErrReferenceNotFound, entity.Label(), sourceID)
	}

	ok, err := exists(ctx, sourceID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: %s %d", domain.ErrReferenceNotFound, entity.Label(), sourceID)
	}
	return sourceID, nil
}
