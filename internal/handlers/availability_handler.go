package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking-api/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-api/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/barber-booking-api/internal/usecase/booking"
)

type AvailabilityHandler struct {
	availabilityUC *ucBooking.GetAvailability
}

func NewAvailabilityHandler(availabilityUC *ucBooking.GetAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityUC: availabilityUC}
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	date := c.Query("date")
	locationID := c.Query("location_id")
	if date == "" || locationID == "" {
		httperr.BadRequest(c, "missing_parameters", "date and location_id are required.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), ucBooking.GetAvailabilityInput{
		Date:               date,
		LocationID:         locationID,
		ServiceVariationID: c.Query("service_variation_id"),
	})
	if err != nil {
		if httperr.FromBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_load_availability", "Could not load availability.")
		return
	}

	httpresp.List(c, slots)
}
