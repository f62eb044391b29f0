//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"stayfinder/internal/domain/booking"
	"stayfinder/internal/pkg/clock"
	"stayfinder/internal/pkg/errs"
	"stayfinder/internal/usecase/commands"
	"stayfinder/internal/usecase/queries"
	mockqueries "stayfinder/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newBookingCommands(t *testing.T) (commands.BookingCommands, *mockqueries.MockPropertyQueries) {
	t.Helper()
	ctrl := gomock.NewController(t)
	properties := mockqueries.NewMockPropertyQueries(ctrl)
	uc := commands.NewBookingCommands(properties, clock.NewMockClock(fixedNow))
	return uc, properties
}

func samplePropertyView() *queries.PropertyView {
	return &queries.PropertyView{
		ID:    "1",
		Name:  "Villa Ocean Breeze",
		Price: 120,
		Image: "/images/villa-ocean-breeze.jpg",
	}
}

func TestBuildSummary(t *testing.T) {
	t.Run("merges property data with navigation parameters", func(t *testing.T) {
		uc, properties := newBookingCommands(t)
		properties.EXPECT().GetByID(gomock.Any(), "1").Return(samplePropertyView(), nil)

		summary, err := uc.BuildSummary(context.Background(), commands.SummaryParams{
			PropertyID:  "1",
			CheckIn:     "2025-03-10",
			CheckOut:    "2025-03-13",
			Guests:      "2",
			TotalNights: "3",
			TotalPrice:  "360",
		})
		require.NoError(t, err)

		assert.Equal(t, &commands.BookingSummary{
			PropertyName: "Villa Ocean Breeze",
			Price:        120,
			BookingFee:   booking.ServiceFeeUnits,
			TotalNights:  3,
			StartDate:    "2025-03-10",
			EndDate:      "2025-03-13",
			Guests:       2,
			Total:        360,
			Image:        "/images/villa-ocean-breeze.jpg",
			PropertyID:   "1",
		}, summary)
	})

	t.Run("missing property id short-circuits before any fetch", func(t *testing.T) {
		uc, _ := newBookingCommands(t)

		_, err := uc.BuildSummary(context.Background(), commands.SummaryParams{})
		require.ErrorIs(t, err, commands.ErrPropertyIDRequired)
	})

	t.Run("fetch errors pass through unchanged", func(t *testing.T) {
		uc, properties := newBookingCommands(t)
		notFound := errs.Mark(errs.New("no such property"), errs.ErrPropertyNotFound)
		properties.EXPECT().GetByID(gomock.Any(), "99").Return(nil, notFound)

		summary, err := uc.BuildSummary(context.Background(), commands.SummaryParams{PropertyID: "99"})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrPropertyNotFound))
		assert.Nil(t, summary)
	})

	t.Run("absent optional parameters fall back to defaults", func(t *testing.T) {
		uc, properties := newBookingCommands(t)
		properties.EXPECT().GetByID(gomock.Any(), "1").Return(samplePropertyView(), nil)

		summary, err := uc.BuildSummary(context.Background(), commands.SummaryParams{PropertyID: "1"})
		require.NoError(t, err)

		assert.Equal(t, 1, summary.Guests)
		assert.Equal(t, 0, summary.TotalNights)
		assert.Equal(t, int64(120), summary.Total)
		assert.Empty(t, summary.StartDate)
		assert.Empty(t, summary.EndDate)
	})

	t.Run("malformed numeric parameters count as absent", func(t *testing.T) {
		cases := []struct {
			name   string
			params commands.SummaryParams
		}{
			{name: "non numeric", params: commands.SummaryParams{PropertyID: "1", Guests: "two", TotalNights: "a week", TotalPrice: "lots"}},
			{name: "zero values", params: commands.SummaryParams{PropertyID: "1", Guests: "0", TotalNights: "0", TotalPrice: "0"}},
			{name: "negative values", params: commands.SummaryParams{PropertyID: "1", Guests: "-2", TotalNights: "-3", TotalPrice: "-360"}},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				uc, properties := newBookingCommands(t)
				properties.EXPECT().GetByID(gomock.Any(), "1").Return(samplePropertyView(), nil)

				summary, err := uc.BuildSummary(context.Background(), c.params)
				require.NoError(t, err)

				assert.Equal(t, 1, summary.Guests)
				assert.Equal(t, 0, summary.TotalNights)
				assert.Equal(t, int64(120), summary.Total)
			})
		}
	})

	t.Run("grand total adds the fee exactly once", func(t *testing.T) {
		uc, properties := newBookingCommands(t)
		properties.EXPECT().GetByID(gomock.Any(), "1").Return(samplePropertyView(), nil)

		summary, err := uc.BuildSummary(context.Background(), commands.SummaryParams{
			PropertyID: "1",
			TotalPrice: "360",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(360), summary.Total)
		assert.Equal(t, int64(booking.ServiceFeeUnits), summary.BookingFee)
		assert.Equal(t, int64(360+booking.ServiceFeeUnits), summary.GrandTotal())
	})
}

func TestSubmit(t *testing.T) {
	validForm := booking.Form{
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane.doe@example.com",
		PhoneNumber:    "+12025550147",
		CardNumber:     "4111111111111111",
		ExpirationDate: "12/27",
		CVV:            "123",
		BillingAddress: "42 Harbor Street",
	}

	t.Run("valid form yields a confirmation", func(t *testing.T) {
		uc, properties := newBookingCommands(t)
		properties.EXPECT().GetByID(gomock.Any(), "1").Return(samplePropertyView(), nil)

		conf, err := uc.Submit(context.Background(), validForm, commands.SummaryParams{
			PropertyID: "1",
			TotalPrice: "360",
		})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, conf.BookingID)
		assert.Equal(t, commands.StatusConfirmed, conf.Status)
		assert.Equal(t, fixedNow, conf.ConfirmedAt)
		assert.Equal(t, int64(360+booking.ServiceFeeUnits), conf.GrandTotal)
		require.NotNil(t, conf.Summary)
		assert.Equal(t, "Villa Ocean Breeze", conf.Summary.PropertyName)
	})

	t.Run("invalid form is rejected before any fetch", func(t *testing.T) {
		uc, _ := newBookingCommands(t)

		_, err := uc.Submit(context.Background(), booking.Form{}, commands.SummaryParams{PropertyID: "1"})

		var fieldErr *commands.FieldValidationError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, 8, fieldErr.Fields.Count())
	})

	t.Run("single bad field reports only that field", func(t *testing.T) {
		uc, _ := newBookingCommands(t)

		form := validForm
		form.Email = "not-an-email"
		_, err := uc.Submit(context.Background(), form, commands.SummaryParams{PropertyID: "1"})

		var fieldErr *commands.FieldValidationError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, 1, fieldErr.Fields.Count())
		assert.Equal(t, "Please enter a valid email address", fieldErr.Fields.Email)
	})

	t.Run("assembly failure surfaces after validation", func(t *testing.T) {
		uc, properties := newBookingCommands(t)
		notFound := errs.Mark(errs.New("no such property"), errs.ErrPropertyNotFound)
		properties.EXPECT().GetByID(gomock.Any(), "99").Return(nil, notFound)

		_, err := uc.Submit(context.Background(), validForm, commands.SummaryParams{PropertyID: "99"})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrPropertyNotFound))
	})

	t.Run("booking ids are unique per submission", func(t *testing.T) {
		uc, properties := newBookingCommands(t)
		properties.EXPECT().GetByID(gomock.Any(), "1").Return(samplePropertyView(), nil).Times(2)

		first, err := uc.Submit(context.Background(), validForm, commands.SummaryParams{PropertyID: "1"})
		require.NoError(t, err)
		second, err := uc.Submit(context.Background(), validForm, commands.SummaryParams{PropertyID: "1"})
		require.NoError(t, err)

		assert.NotEqual(t, first.BookingID, second.BookingID)
	})
}
