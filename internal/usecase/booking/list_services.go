package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-booking-api/internal/cache"
	"github.com/BruksfildServices01/barber-booking-api/internal/catalog"
)

// ListServices serves the normalized catalog for the booking screen. The
// normalized snapshot lives in redis; on a miss the catalog and locations
// are fetched from Square and flattened.
type ListServices struct {
	provider  Provider
	locations *LocationDirectory
	cache     *cache.CatalogCache
	policy    catalog.PresencePolicy
}

func NewListServices(
	provider Provider,
	locations *LocationDirectory,
	c *cache.CatalogCache,
	policy catalog.PresencePolicy,
) *ListServices {
	return &ListServices{
		provider:  provider,
		locations: locations,
		cache:     c,
		policy:    policy,
	}
}

func (uc *ListServices) Execute(ctx context.Context, locationID string) ([]catalog.Service, error) {
	if uc.cache != nil {
		if services, ok := uc.cache.GetServices(ctx); ok {
			return filterByLocation(services, locationID), nil
		}
	}

	locations, err := uc.locations.All(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := uc.provider.ListCatalog(ctx)
	if err != nil {
		return nil, err
	}

	services := catalog.Normalize(raw, locations, uc.policy)
	if uc.cache != nil {
		uc.cache.SetServices(ctx, services)
	}

	return filterByLocation(services, locationID), nil
}

func filterByLocation(services []catalog.Service, locationID string) []catalog.Service {
	if locationID == "" {
		return services
	}
	filtered := make([]catalog.Service, 0, len(services))
	for _, svc := range services {
		if svc.LocationID == locationID {
			filtered = append(filtered, svc)
		}
	}
	return filtered
}
