package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking-api/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-api/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/barber-booking-api/internal/usecase/booking"
)

type CatalogHandler struct {
	servicesUC *ucBooking.ListServices
	locations  *ucBooking.LocationDirectory
}

func NewCatalogHandler(
	servicesUC *ucBooking.ListServices,
	locations *ucBooking.LocationDirectory,
) *CatalogHandler {
	return &CatalogHandler{
		servicesUC: servicesUC,
		locations:  locations,
	}
}

// ListServices serves the flattened catalog the booking screen renders.
// Optional ?location_id= narrows to one shop.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.servicesUC.Execute(c.Request.Context(), c.Query("location_id"))
	if err != nil {
		httperr.Internal(c, "failed_to_load_services", "Could not load services.")
		return
	}

	httpresp.List(c, services)
}

func (h *CatalogHandler) ListLocations(c *gin.Context) {
	locations, err := h.locations.All(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_load_locations", "Could not load locations.")
		return
	}

	httpresp.List(c, locations)
}
