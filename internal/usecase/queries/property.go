package queries

import (
	"context"

	"stayfinder/internal/infra"
	"stayfinder/internal/pkg/errs"
)

var (
	ErrPropertyNotFound = errs.ErrPropertyNotFound
	ErrPropertyFetch    = errs.ErrPropertyFetch
)

// PropertyView represents read-optimized property data, mirroring the wire
// shape of the listing data source.
type PropertyView struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Address     AddressView `json:"address"`
	Rating      float64     `json:"rating"`
	Category    []string    `json:"category"`
	Price       int64       `json:"price"`
	Offers      OffersView  `json:"offers"`
	Image       string      `json:"image"`
	Discount    string      `json:"discount"`
	Description string      `json:"description,omitempty"`
	Amenities   []string    `json:"amenities,omitempty"`
}

type AddressView struct {
	State   string `json:"state"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type OffersView struct {
	Bed       string `json:"bed"`
	Shower    string `json:"shower"`
	Occupants string `json:"occupants"`
}

type PropertyReadStore interface {
	FindByID(ctx context.Context, id string) (*PropertyView, error)
}

type PropertyQueries interface {
	GetByID(ctx context.Context, id string) (*PropertyView, error)
}

type propertyQueriesImpl struct {
	store PropertyReadStore
}

func NewPropertyQueries(store PropertyReadStore) PropertyQueries {
	return &propertyQueriesImpl{store: store}
}

func (q *propertyQueriesImpl) GetByID(ctx context.Context, id string) (*PropertyView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrPropertyNotFound)
		}
		return nil, errs.Mark(err, ErrPropertyFetch)
	}
	return view, nil
}
