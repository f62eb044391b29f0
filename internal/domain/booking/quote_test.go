//go:build unit

package booking_test

import (
	"testing"
	"time"

	"stayfinder/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(value string) time.Time {
	t, ok := booking.ParseDate(value)
	if !ok {
		panic("bad test date: " + value)
	}
	return t
}

func TestNights(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{name: "single night", checkIn: "2025-03-10", checkOut: "2025-03-11", want: 1},
		{name: "full week", checkIn: "2025-03-10", checkOut: "2025-03-17", want: 7},
		{name: "same day", checkIn: "2025-03-10", checkOut: "2025-03-10", want: 0},
		{name: "inverted dates", checkIn: "2025-03-17", checkOut: "2025-03-10", want: -7},
		{name: "across month boundary", checkIn: "2025-01-30", checkOut: "2025-02-02", want: 3},
		{name: "across year boundary", checkIn: "2024-12-30", checkOut: "2025-01-02", want: 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, booking.Nights(date(c.checkIn), date(c.checkOut)))
		})
	}

	t.Run("zero when either date is absent", func(t *testing.T) {
		assert.Equal(t, 0, booking.Nights(time.Time{}, date("2025-03-11")))
		assert.Equal(t, 0, booking.Nights(date("2025-03-10"), time.Time{}))
	})

	t.Run("partial day rounds up", func(t *testing.T) {
		checkIn := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
		checkOut := time.Date(2025, 3, 12, 11, 0, 0, 0, time.UTC)
		assert.Equal(t, 2, booking.Nights(checkIn, checkOut))
	})
}

func TestParseDate(t *testing.T) {
	t.Run("plain calendar date", func(t *testing.T) {
		parsed, ok := booking.ParseDate("2025-03-10")
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("timezone offset is ignored", func(t *testing.T) {
		plus, ok := booking.ParseDate("2025-03-10T00:00:00+09:00")
		require.True(t, ok)
		minus, ok := booking.ParseDate("2025-03-10T00:00:00-07:00")
		require.True(t, ok)

		assert.Equal(t, plus, minus)
		assert.Equal(t, 1, booking.Nights(plus, date("2025-03-11")))
	})

	t.Run("empty and malformed values", func(t *testing.T) {
		for _, value := range []string{"", "not-a-date", "10/03/2025"} {
			_, ok := booking.ParseDate(value)
			assert.False(t, ok, value)
		}
	})
}

func TestMoney(t *testing.T) {
	t.Run("whole unit round trip", func(t *testing.T) {
		m, err := booking.MoneyFromUnits(3200)
		require.NoError(t, err)
		assert.Equal(t, int64(3200), m.Units())
		assert.Equal(t, int64(320000), m.Cents())
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := booking.MoneyFromUnits(-1)
		require.Error(t, err)
	})

	t.Run("service fee is a flat amount", func(t *testing.T) {
		assert.Equal(t, int64(booking.ServiceFeeUnits), booking.ServiceFee().Units())
	})
}

func TestQuote(t *testing.T) {
	nightly, err := booking.MoneyFromUnits(120)
	require.NoError(t, err)

	t.Run("before dates are chosen", func(t *testing.T) {
		q := booking.NewQuote(nightly)
		assert.Equal(t, 0, q.Nights())
		assert.Equal(t, int64(120), q.Subtotal().Units())
	})

	t.Run("valid stay recomputes subtotal", func(t *testing.T) {
		q := booking.NewQuote(nightly)
		q.SetStay(date("2025-03-10"), date("2025-03-13"))

		assert.Equal(t, 3, q.Nights())
		assert.Equal(t, int64(360), q.Subtotal().Units())
		assert.Equal(t, int64(360+booking.ServiceFeeUnits), q.GrandTotal().Units())
	})

	t.Run("zero night stay keeps previous subtotal", func(t *testing.T) {
		q := booking.NewQuote(nightly)
		q.SetStay(date("2025-03-10"), date("2025-03-13"))
		q.SetStay(date("2025-03-10"), date("2025-03-10"))

		assert.Equal(t, 3, q.Nights())
		assert.Equal(t, int64(360), q.Subtotal().Units())
	})

	t.Run("inverted stay keeps previous subtotal", func(t *testing.T) {
		q := booking.NewQuote(nightly)
		q.SetStay(date("2025-03-10"), date("2025-03-12"))
		q.SetStay(date("2025-03-12"), date("2025-03-10"))

		assert.Equal(t, 2, q.Nights())
		assert.Equal(t, int64(240), q.Subtotal().Units())
	})
}
