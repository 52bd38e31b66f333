package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking-api/internal/cart"
	"github.com/BruksfildServices01/barber-booking-api/internal/catalog"
	"github.com/BruksfildServices01/barber-booking-api/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-api/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking-api/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barber-booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC     *ucBooking.CreateBooking
	rescheduleUC *ucBooking.RescheduleBooking
	cancelUC     *ucBooking.CancelBooking
	listUC       *ucBooking.ListBookings
	quoteUC      *ucBooking.CancellationQuote
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	rescheduleUC *ucBooking.RescheduleBooking,
	cancelUC *ucBooking.CancelBooking,
	listUC *ucBooking.ListBookings,
	quoteUC *ucBooking.CancellationQuote,
) *BookingHandler {
	return &BookingHandler{
		createUC:     createUC,
		rescheduleUC: rescheduleUC,
		cancelUC:     cancelUC,
		listUC:       listUC,
		quoteUC:      quoteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type cartLineRequest struct {
	Service  catalog.Service `json:"service" binding:"required"`
	Quantity int             `json:"quantity" binding:"required,gt=0"`
}

type CreateBookingRequest struct {
	Lines      []cartLineRequest `json:"lines"`
	Date       string            `json:"date" binding:"required"`
	Time       string            `json:"time" binding:"required"`
	LocationID string            `json:"location_id" binding:"required"`
	Notes      string            `json:"notes"`
}

type RescheduleBookingRequest struct {
	NewDate string `json:"new_date" binding:"required"`
	NewTime string `json:"new_time" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	// Rebuild the cart through its own invariants: one line per service,
	// quantities merged, zero lines dropped.
	userCart := cart.Cart{}
	for _, line := range req.Lines {
		for i := 0; i < line.Quantity; i++ {
			userCart = userCart.Add(line.Service)
		}
	}

	out, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:     userID,
		UserName:   c.GetString(middleware.ContextUserName),
		UserEmail:  c.GetString(middleware.ContextUserEmail),
		Cart:       userCart,
		Date:       req.Date,
		Time:       req.Time,
		LocationID: req.LocationID,
		Notes:      req.Notes,
	})
	if err != nil {
		if httperr.FromBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_booking", "Could not save your booking. Please try again.")
		return
	}

	warning := ""
	if out.Warning != nil {
		warning = out.Warning.Message()
	}
	httpresp.Created(c, out.Booking, warning)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	views, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not load your bookings.")
		return
	}

	httpresp.List(c, views)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *BookingHandler) Reschedule(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	bookingID := c.Param("id")

	var req RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	out, err := h.rescheduleUC.Execute(c.Request.Context(), ucBooking.RescheduleBookingInput{
		BookingID: bookingID,
		UserID:    userID,
		NewDate:   req.NewDate,
		NewTime:   req.NewTime,
	})
	if err != nil {
		if httperr.FromBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_reschedule_booking", "Could not update your booking. Please try again.")
		return
	}

	warning := ""
	if out.Warning != nil {
		warning = out.Warning.Message()
	}
	httpresp.OKWarn(c, out.Booking, warning)
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	bookingID := c.Param("id")

	out, err := h.cancelUC.Execute(c.Request.Context(), ucBooking.CancelBookingInput{
		BookingID: bookingID,
		UserID:    userID,
	})
	if err != nil {
		if httperr.FromBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_cancel_booking", "Could not cancel your booking. Please try again.")
		return
	}

	warning := ""
	if out.Warning != nil {
		warning = out.Warning.Message()
	}
	httpresp.OKWarn(c, out.Cancellation, warning)
}

// ======================================================
// CANCELLATION QUOTE
// ======================================================

func (h *BookingHandler) CancellationQuote(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	bookingID := c.Param("id")

	out, err := h.quoteUC.Execute(c.Request.Context(), bookingID, userID)
	if err != nil {
		if httperr.FromBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_quote_cancellation", "Could not load cancellation details.")
		return
	}

	httpresp.OK(c, out)
}
