package request

import (
	"stayfinder/internal/domain/booking"
	"stayfinder/internal/usecase/commands"
)

// BookingParamsRequest mirrors the navigation-carried query parameters.
// Values stay strings end to end; the assembler applies the lenient numeric
// defaults, so a malformed field never fails binding.
type BookingParamsRequest struct {
	PropertyID  string `json:"propertyId"`
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
	Guests      string `json:"guests"`
	TotalNights string `json:"totalNights"`
	TotalPrice  string `json:"totalPrice"`
}

func (r BookingParamsRequest) ToParams() commands.SummaryParams {
	return commands.SummaryParams{
		PropertyID:  r.PropertyID,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		Guests:      r.Guests,
		TotalNights: r.TotalNights,
		TotalPrice:  r.TotalPrice,
	}
}

// BookingFormRequest carries the checkout form. Fields are deliberately
// unconstrained at the binding layer; the domain validator owns the per-field
// messages.
type BookingFormRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	CardNumber     string `json:"cardNumber"`
	ExpirationDate string `json:"expirationDate"`
	CVV            string `json:"cvv"`
	BillingAddress string `json:"billingAddress"`
}

func (r BookingFormRequest) ToDomain() booking.Form {
	return booking.Form{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		PhoneNumber:    r.PhoneNumber,
		CardNumber:     r.CardNumber,
		ExpirationDate: r.ExpirationDate,
		CVV:            r.CVV,
		BillingAddress: r.BillingAddress,
	}
}

type SubmitBookingRequest struct {
	Booking BookingParamsRequest `json:"booking" binding:"required"`
	Form    BookingFormRequest   `json:"form" binding:"required"`
}
