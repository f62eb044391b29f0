package queries

import (
	"context"

	"stayfinder/internal/domain/review"
	"stayfinder/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

var ErrReviewFetch = errs.ErrReviewFetch

// ReviewView represents read-optimized review data in the order the data
// source returns it.
type ReviewView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// ReviewPage is the aggregated display state for a property's review panel.
type ReviewPage struct {
	Reviews       []ReviewView `json:"reviews"`
	AverageRating float64      `json:"averageRating"`
	TotalReviews  int          `json:"totalReviews"`
	HasMore       bool         `json:"hasMore"`
}

type ReviewReadStore interface {
	ListByPropertyID(ctx context.Context, propertyID string) ([]ReviewView, error)
}

type ReviewQueries interface {
	ListByProperty(ctx context.Context, propertyID string) ([]ReviewView, error)
	PageByProperty(ctx context.Context, propertyID string, showAll bool) (*ReviewPage, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) ListByProperty(ctx context.Context, propertyID string) ([]ReviewView, error) {
	rows, err := q.store.ListByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, errs.Mark(err, ErrReviewFetch)
	}
	return rows, nil
}

func (q *reviewQueriesImpl) PageByProperty(ctx context.Context, propertyID string, showAll bool) (*ReviewPage, error) {
	rows, err := q.store.ListByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, errs.Mark(err, ErrReviewFetch)
	}

	var records []review.Review
	if err := copier.Copy(&records, &rows); err != nil {
		return nil, errs.Wrap(err, "failed to map review views")
	}

	visible := review.VisibleSlice(records, showAll)
	page := &ReviewPage{
		Reviews:       rows[:len(visible)],
		AverageRating: review.AverageRating(records),
		TotalReviews:  len(records),
		HasMore:       review.HasMore(records),
	}
	return page, nil
}
