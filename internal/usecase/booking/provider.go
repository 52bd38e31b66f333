package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-booking-api/internal/cache"
	"github.com/BruksfildServices01/barber-booking-api/internal/catalog"
	"github.com/BruksfildServices01/barber-booking-api/internal/square"
)

// Provider is the slice of the Square client the booking use cases need.
type Provider interface {
	ListLocations(ctx context.Context) ([]catalog.Location, error)
	ListCatalog(ctx context.Context) (catalog.RawCatalog, error)
	SearchAvailability(ctx context.Context, q square.AvailabilityQuery) ([]square.Slot, error)

	CreateCustomer(ctx context.Context, name, email, referenceID string) (string, error)

	CreateBooking(ctx context.Context, b square.Booking) (square.Booking, error)
	RetrieveBooking(ctx context.Context, bookingID string) (square.Booking, error)
	UpdateBooking(ctx context.Context, bookingID string, b square.Booking) (square.Booking, error)
	CancelBooking(ctx context.Context, bookingID string, version int) error
}

// ======================================================
// LOCATION DIRECTORY
// ======================================================

// LocationDirectory answers "which zone does this location live in" with
// the cached location list, falling back to the provider. Locations are
// always passed around explicitly; nothing here reads mutable globals.
type LocationDirectory struct {
	provider Provider
	cache    *cache.CatalogCache
}

func NewLocationDirectory(provider Provider, c *cache.CatalogCache) *LocationDirectory {
	return &LocationDirectory{provider: provider, cache: c}
}

func (d *LocationDirectory) All(ctx context.Context) ([]catalog.Location, error) {
	if d.cache != nil {
		if locs, ok := d.cache.GetLocations(ctx); ok {
			return locs, nil
		}
	}

	locs, err := d.provider.ListLocations(ctx)
	if err != nil {
		return nil, err
	}
	if d.cache != nil {
		d.cache.SetLocations(ctx, locs)
	}
	return locs, nil
}

// ZoneID returns the location's IANA zone, or "" (interpreted as UTC
// downstream) when the location or its zone is unknown. A lookup failure
// degrades to the UTC fallback rather than blocking the caller.
func (d *LocationDirectory) ZoneID(ctx context.Context, locationID string) string {
	locs, err := d.All(ctx)
	if err != nil {
		return ""
	}
	for _, loc := range locs {
		if loc.ID == locationID {
			return loc.Timezone
		}
	}
	return ""
}
