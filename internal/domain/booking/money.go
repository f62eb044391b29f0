package booking

import "errors"

// ServiceFeeUnits is the flat per-booking surcharge, independent of stay length.
const ServiceFeeUnits = 65

// Money holds an amount in integer minor units (cents) to keep price
// arithmetic free of floating-point drift. The API exchanges whole
// currency units, so conversions happen at the boundary.
type Money struct {
	cents int64
}

func MoneyFromUnits(units int64) (Money, error) {
	if units < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: units * 100}, nil
}

func ServiceFee() Money {
	return Money{cents: ServiceFeeUnits * 100}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Units() int64 {
	return m.cents / 100
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MulNights(nights int) Money {
	return Money{cents: m.cents * int64(nights)}
}
