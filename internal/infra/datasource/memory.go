package datasource

import (
	"context"
	"slices"

	"stayfinder/internal/infra"
	"stayfinder/internal/usecase/queries"
)

// MemoryPropertyStore is the injectable listing data source backed by a fixed
// in-memory table. Records are read-only; lookups return copies.
type MemoryPropertyStore struct {
	byID map[string]queries.PropertyView
}

func NewMemoryPropertyStore(rows []queries.PropertyView) *MemoryPropertyStore {
	byID := make(map[string]queries.PropertyView, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	return &MemoryPropertyStore{byID: byID}
}

func (s *MemoryPropertyStore) FindByID(ctx context.Context, id string) (*queries.PropertyView, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapStoreErr(infra.KindFetchFailure, "property fetch canceled", err)
	}
	row, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapStoreErr(infra.KindNotFound, "property not found", nil)
	}
	return &row, nil
}

// MemoryReviewStore serves the same fixed review set for every property, the
// way the mock endpoint does. Order is preserved as seeded.
type MemoryReviewStore struct {
	reviews []queries.ReviewView
}

func NewMemoryReviewStore(rows []queries.ReviewView) *MemoryReviewStore {
	return &MemoryReviewStore{reviews: rows}
}

func (s *MemoryReviewStore) ListByPropertyID(ctx context.Context, _ string) ([]queries.ReviewView, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapStoreErr(infra.KindFetchFailure, "review fetch canceled", err)
	}
	return slices.Clone(s.reviews), nil
}
