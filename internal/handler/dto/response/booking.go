package response

import (
	"time"

	"stayfinder/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookingSummaryResponse struct {
	PropertyName string `json:"propertyName"`
	Price        int64  `json:"price"`
	BookingFee   int64  `json:"bookingFee"`
	TotalNights  int    `json:"totalNights"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Guests       int    `json:"guests"`
	Total        int64  `json:"total"`
	GrandTotal   int64  `json:"grandTotal"`
	Image        string `json:"image"`
	PropertyID   string `json:"propertyId"`
}

type ConfirmationResponse struct {
	BookingID   uuid.UUID               `json:"bookingId"`
	Status      string                  `json:"status"`
	GrandTotal  int64                   `json:"grandTotal"`
	ConfirmedAt time.Time               `json:"confirmedAt"`
	Summary     *BookingSummaryResponse `json:"summary"`
}

func FromBookingSummary(s *commands.BookingSummary) *BookingSummaryResponse {
	return &BookingSummaryResponse{
		PropertyName: s.PropertyName,
		Price:        s.Price,
		BookingFee:   s.BookingFee,
		TotalNights:  s.TotalNights,
		StartDate:    s.StartDate,
		EndDate:      s.EndDate,
		Guests:       s.Guests,
		Total:        s.Total,
		GrandTotal:   s.GrandTotal(),
		Image:        s.Image,
		PropertyID:   s.PropertyID,
	}
}

func FromConfirmation(c *commands.Confirmation) *ConfirmationResponse {
	return &ConfirmationResponse{
		BookingID:   c.BookingID,
		Status:      c.Status,
		GrandTotal:  c.GrandTotal,
		ConfirmedAt: c.ConfirmedAt,
		Summary:     FromBookingSummary(c.Summary),
	}
}
