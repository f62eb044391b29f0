package session

import (
	"stayfinder/internal/domain/booking"
	"stayfinder/internal/pkg/errs"
	"stayfinder/internal/usecase/commands"
)

var ErrMissingDates = errs.ErrMissingDates

// ListingState owns the date/guest inputs of one listing detail view and the
// running price quote. Each view holds its state exclusively; nothing here is
// shared across views.
type ListingState struct {
	propertyID string
	nightly    booking.Money
	checkIn    string
	checkOut   string
	guests     int
	quote      booking.Quote
}

func NewListingState(propertyID string, nightlyPriceUnits int64) (*ListingState, error) {
	nightly, err := booking.MoneyFromUnits(nightlyPriceUnits)
	if err != nil {
		return nil, err
	}
	return &ListingState{
		propertyID: propertyID,
		nightly:    nightly,
		guests:     1,
		quote:      booking.NewQuote(nightly),
	}, nil
}

// SetDates records the input values and recomputes the quote. An inverted or
// incomplete date pair leaves the previously displayed total in place.
func (s *ListingState) SetDates(checkIn, checkOut string) {
	s.checkIn = checkIn
	s.checkOut = checkOut
	in, _ := booking.ParseDate(checkIn)
	out, _ := booking.ParseDate(checkOut)
	s.quote.SetStay(in, out)
}

func (s *ListingState) SetGuests(guests int) {
	if guests < 1 {
		guests = 1
	}
	s.guests = guests
}

func (s *ListingState) Quote() booking.Quote {
	return s.quote
}

// Reserve packages the navigation parameters carried to the checkout page.
// Both dates must be chosen first; the total passed along is the pre-fee
// subtotal.
func (s *ListingState) Reserve() (commands.SummaryParams, error) {
	if s.checkIn == "" || s.checkOut == "" {
		return commands.SummaryParams{}, ErrMissingDates
	}
	return commands.SummaryParams{
		PropertyID:  s.propertyID,
		CheckIn:     s.checkIn,
		CheckOut:    s.checkOut,
		Guests:      itoa(s.guests),
		TotalNights: itoa(s.quote.Nights()),
		TotalPrice:  i64toa(s.quote.Subtotal().Units()),
	}, nil
}
