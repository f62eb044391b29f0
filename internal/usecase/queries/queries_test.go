//go:build unit

package queries_test

import (
	"context"
	"strconv"
	"testing"

	"stayfinder/internal/domain/review"
	"stayfinder/internal/infra"
	"stayfinder/internal/pkg/errs"
	"stayfinder/internal/usecase/queries"
	queriesmock "stayfinder/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPropertyQueries(t *testing.T) {
	t.Run("found view passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPropertyReadStore(ctrl)
		view := &queries.PropertyView{ID: "1", Name: "Villa Ocean Breeze", Price: 3200}
		store.EXPECT().FindByID(gomock.Any(), "1").Return(view, nil)

		got, err := queries.NewPropertyQueries(store).GetByID(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("not found kind maps to the not found sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPropertyReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), "99").
			Return(nil, infra.WrapStoreErr(infra.KindNotFound, "property not found", nil))

		_, err := queries.NewPropertyQueries(store).GetByID(context.Background(), "99")
		require.Error(t, err)
		assert.True(t, errs.Is(err, queries.ErrPropertyNotFound))
	})

	t.Run("other kinds map to the fetch sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPropertyReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), "1").
			Return(nil, infra.WrapStoreErr(infra.KindFetchFailure, "source unavailable", nil))

		_, err := queries.NewPropertyQueries(store).GetByID(context.Background(), "1")
		require.Error(t, err)
		assert.True(t, errs.Is(err, queries.ErrPropertyFetch))
		assert.False(t, errs.Is(err, queries.ErrPropertyNotFound))
	})
}

func reviewRows(ratings ...int) []queries.ReviewView {
	rows := make([]queries.ReviewView, len(ratings))
	for i, rating := range ratings {
		rows[i] = queries.ReviewView{ID: strconv.Itoa(i + 1), Rating: rating}
	}
	return rows
}

func TestReviewQueries(t *testing.T) {
	t.Run("list passes rows through unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReviewReadStore(ctrl)
		rows := reviewRows(5, 4)
		store.EXPECT().ListByPropertyID(gomock.Any(), "1").Return(rows, nil)

		got, err := queries.NewReviewQueries(store).ListByProperty(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("list marks store failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReviewReadStore(ctrl)
		store.EXPECT().ListByPropertyID(gomock.Any(), "1").
			Return(nil, infra.WrapStoreErr(infra.KindFetchFailure, "source unavailable", nil))

		_, err := queries.NewReviewQueries(store).ListByProperty(context.Background(), "1")
		require.Error(t, err)
		assert.True(t, errs.Is(err, queries.ErrReviewFetch))
	})

	t.Run("page aggregates rating, count and truncation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReviewReadStore(ctrl)
		store.EXPECT().ListByPropertyID(gomock.Any(), "1").Return(reviewRows(5, 4, 5, 4, 5, 4, 3, 2), nil)

		page, err := queries.NewReviewQueries(store).PageByProperty(context.Background(), "1", false)
		require.NoError(t, err)

		assert.Len(t, page.Reviews, review.DefaultVisibleCount)
		assert.Equal(t, "1", page.Reviews[0].ID)
		assert.InDelta(t, 4.0, page.AverageRating, 1e-9)
		assert.Equal(t, 8, page.TotalReviews)
		assert.True(t, page.HasMore)
	})

	t.Run("page with show all returns everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReviewReadStore(ctrl)
		store.EXPECT().ListByPropertyID(gomock.Any(), "1").Return(reviewRows(5, 4, 5, 4, 5, 4, 3, 2), nil)

		page, err := queries.NewReviewQueries(store).PageByProperty(context.Background(), "1", true)
		require.NoError(t, err)

		assert.Len(t, page.Reviews, 8)
		assert.True(t, page.HasMore)
	})

	t.Run("page of an empty list averages to zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReviewReadStore(ctrl)
		store.EXPECT().ListByPropertyID(gomock.Any(), "1").Return(nil, nil)

		page, err := queries.NewReviewQueries(store).PageByProperty(context.Background(), "1", false)
		require.NoError(t, err)

		assert.Empty(t, page.Reviews)
		assert.Zero(t, page.AverageRating)
		assert.Equal(t, 0, page.TotalReviews)
		assert.False(t, page.HasMore)
	})
}
