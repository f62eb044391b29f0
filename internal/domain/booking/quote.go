package booking

import "time"

// Quote tracks the running price of a prospective stay as the guest picks
// dates. The subtotal and the flat service fee stay separate so the summary
// can show a breakdown line without re-deriving nights; they are only summed
// in GrandTotal.
type Quote struct {
	nightly Money
	nights  int
	total   Money
}

// NewQuote starts a quote before any dates are chosen: zero nights, total
// primed with the nightly price. Display of the total is gated on Nights()>0.
func NewQuote(nightly Money) Quote {
	return Quote{
		nightly: nightly,
		nights:  0,
		total:   nightly,
	}
}

// SetStay recomputes nights and subtotal for a date pair. When the pair
// yields zero or negative nights the previous subtotal is kept as-is, so the
// UI never shows a zero-night or negative charge.
func (q *Quote) SetStay(checkIn, checkOut time.Time) {
	nights := Nights(checkIn, checkOut)
	if nights <= 0 {
		return
	}
	q.nights = nights
	q.total = q.nightly.MulNights(nights)
}

func (q Quote) Nightly() Money {
	return q.nightly
}

func (q Quote) Nights() int {
	return q.nights
}

func (q Quote) Subtotal() Money {
	return q.total
}

func (q Quote) GrandTotal() Money {
	return q.total.Add(ServiceFee())
}
