package commands

import (
	"context"
	"strconv"
	"time"

	"stayfinder/internal/domain/booking"
	"stayfinder/internal/pkg/clock"
	"stayfinder/internal/pkg/errs"
	"stayfinder/internal/pkg/patch"
	"stayfinder/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrPropertyIDRequired = errs.ErrPropertyIDRequired
	ErrBookingValidation  = errs.ErrBookingValidation
)

// SummaryParams is the raw navigation-carried parameter set from the listing
// page. Every field except PropertyID may be absent or malformed.
type SummaryParams struct {
	PropertyID  string
	CheckIn     string
	CheckOut    string
	Guests      string
	TotalNights string
	TotalPrice  string
}

// BookingSummary is the fetch-confirmed pricing/date breakdown shown at
// checkout. Total is the pre-fee subtotal; BookingFee is tracked separately
// and only summed into a grand total at presentation time.
type BookingSummary struct {
	PropertyName string `json:"propertyName"`
	Price        int64  `json:"price"`
	BookingFee   int64  `json:"bookingFee"`
	TotalNights  int    `json:"totalNights"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Guests       int    `json:"guests"`
	Total        int64  `json:"total"`
	Image        string `json:"image"`
	PropertyID   string `json:"propertyId"`
}

func (s *BookingSummary) GrandTotal() int64 {
	subtotal, err := booking.MoneyFromUnits(s.Total)
	if err != nil {
		return s.Total + booking.ServiceFeeUnits
	}
	return subtotal.Add(booking.ServiceFee()).Units()
}

// FieldValidationError carries the per-field messages of a rejected form.
type FieldValidationError struct {
	Fields booking.FieldErrors
}

func (e *FieldValidationError) Error() string {
	return ErrBookingValidation.Error()
}

type Confirmation struct {
	BookingID   uuid.UUID
	Status      string
	Summary     *BookingSummary
	GrandTotal  int64
	ConfirmedAt time.Time
}

const StatusConfirmed = "confirmed"

type BookingCommands interface {
	BuildSummary(ctx context.Context, params SummaryParams) (*BookingSummary, error)
	Submit(ctx context.Context, form booking.Form, params SummaryParams) (*Confirmation, error)
}

type bookingCommandsImpl struct {
	properties queries.PropertyQueries
	clock      clock.Clock
}

func NewBookingCommands(properties queries.PropertyQueries, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{properties: properties, clock: clk}
}

// BuildSummary fetches the property and merges it with the navigation
// parameters. The total is trusted from upstream; when absent or malformed it
// falls back to a single night at the property's price, never a fabricated
// nights-times-price product. On any failure no partial summary is returned.
func (uc *bookingCommandsImpl) BuildSummary(ctx context.Context, params SummaryParams) (*BookingSummary, error) {
	if params.PropertyID == "" {
		return nil, ErrPropertyIDRequired
	}

	prop, err := uc.properties.GetByID(ctx, params.PropertyID)
	if err != nil {
		return nil, err
	}

	return &BookingSummary{
		PropertyName: prop.Name,
		Price:        prop.Price,
		BookingFee:   booking.ServiceFeeUnits,
		TotalNights:  patch.Coalesce(parseInt(params.TotalNights), 0),
		StartDate:    params.CheckIn,
		EndDate:      params.CheckOut,
		Guests:       patch.Coalesce(parseInt(params.Guests), 1),
		Total:        patch.Coalesce(parseInt64(params.TotalPrice), prop.Price),
		Image:        prop.Image,
		PropertyID:   params.PropertyID,
	}, nil
}

// Submit gates the checkout on form validation, then assembles the summary
// and issues a confirmation. The card fields are validated but never
// transmitted anywhere.
func (uc *bookingCommandsImpl) Submit(ctx context.Context, form booking.Form, params SummaryParams) (*Confirmation, error) {
	if fieldErrs := form.Validate(); fieldErrs.HasErrors() {
		return nil, &FieldValidationError{Fields: fieldErrs}
	}

	summary, err := uc.BuildSummary(ctx, params)
	if err != nil {
		return nil, err
	}

	return &Confirmation{
		BookingID:   uuid.New(),
		Status:      StatusConfirmed,
		Summary:     summary,
		GrandTotal:  summary.GrandTotal(),
		ConfirmedAt: uc.clock.Now(),
	}, nil
}

// parseInt mirrors the lenient numeric coercion of the navigation layer:
// non-numeric and non-positive values count as absent.
func parseInt(value string) *int {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}

func parseInt64(value string) *int64 {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}
