package api

import (
	"errors"
	"net/http"

	reqdto "stayfinder/internal/handler/dto/request"
	resdto "stayfinder/internal/handler/dto/response"
	"stayfinder/internal/handler/httperr"
	"stayfinder/internal/pkg/errs"
	"stayfinder/internal/usecase/commands"
	"stayfinder/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
}

func NewBookingHandler(cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Booking summary
// @Description Assemble the checkout summary from the property record and the navigation-carried parameters
// @Tags bookings
// @Produce json
// @Param propertyId query string true "Property ID"
// @Param checkIn query string false "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string false "Check-out date (YYYY-MM-DD)"
// @Param guests query string false "Guest count"
// @Param totalNights query string false "Precomputed nights"
// @Param totalPrice query string false "Precomputed pre-fee total"
// @Success 200 {object} resdto.BookingSummaryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bookings/summary [get]
func (h *BookingHandler) GetSummary(c *gin.Context) {
	params := commands.SummaryParams{
		PropertyID:  c.Query("propertyId"),
		CheckIn:     c.Query("checkIn"),
		CheckOut:    c.Query("checkOut"),
		Guests:      c.Query("guests"),
		TotalNights: c.Query("totalNights"),
		TotalPrice:  c.Query("totalPrice"),
	}
	summary, err := h.cmds.BuildSummary(c.Request.Context(), params)
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingSummary(summary))
}

// @Summary Submit booking
// @Description Validate the checkout form, assemble the summary and confirm the booking. Card fields are validated only, never forwarded.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitBookingRequest true "Booking submission"
// @Success 201 {object} resdto.ConfirmationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	confirmation, err := h.cmds.Submit(c.Request.Context(), req.Form.ToDomain(), req.Booking.ToParams())
	if err != nil {
		var fieldErr *commands.FieldValidationError
		if errors.As(err, &fieldErr) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", fieldErr.Fields)
			return
		}
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromConfirmation(confirmation))
}

// abortBookingError maps assembler failures onto the page-level wire shapes.
func abortBookingError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrPropertyIDRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Property ID is required", nil)
	case errs.Is(err, queries.ErrPropertyNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load property details. Please try again.", nil)
	}
}
