package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-booking-api/internal/civiltime"
	"github.com/BruksfildServices01/barber-booking-api/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-api/internal/square"
)

type GetAvailabilityInput struct {
	Date               string
	LocationID         string
	ServiceVariationID string
}

type GetAvailability struct {
	provider  Provider
	locations *LocationDirectory
}

func NewGetAvailability(provider Provider, locations *LocationDirectory) *GetAvailability {
	return &GetAvailability{provider: provider, locations: locations}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in GetAvailabilityInput,
) ([]square.Slot, error) {

	day, err := civiltime.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// Day boundaries follow the location's zone; a naive UTC midnight
	// would show the wrong day's slots for any non-UTC shop.
	zone := uc.locations.ZoneID(ctx, in.LocationID)
	start, end, err := civiltime.DayRange(day, zone)
	if err != nil {
		return nil, err
	}

	return uc.provider.SearchAvailability(ctx, square.AvailabilityQuery{
		LocationID:         in.LocationID,
		ServiceVariationID: in.ServiceVariationID,
		StartAt:            start,
		EndAt:              end,
	})
}
