package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking-api/internal/catalog"
)

func int64p(v int64) *int64 { return &v }

var testRawCatalog = catalog.RawCatalog{
	Objects: []catalog.CatalogObject{
		{
			Type:                  "ITEM",
			ID:                    "ITEM1",
			PresentAtAllLocations: true,
			ItemData: &catalog.ItemData{
				Name: "Haircut",
				Variations: []catalog.Variation{{
					ID:                    "VA",
					Type:                  "ITEM_VARIATION",
					PresentAtAllLocations: true,
					ItemVariationData: &catalog.ItemVariationData{
						ItemID:          "ITEM1",
						Name:            "Haircut",
						PriceMoney:      &catalog.Money{Amount: 3000, Currency: "USD"},
						ServiceDuration: int64p(1800000), // 30 min in ms
					},
				}},
			},
		},
	},
}

func TestListServicesNormalizesAndFilters(t *testing.T) {
	provider := &fakeProvider{
		locations: []catalog.Location{
			{ID: "LOC1", Name: "Downtown", Timezone: "America/New_York"},
			{ID: "LOC2", Name: "Uptown", Timezone: "America/New_York"},
		},
		rawCat: testRawCatalog,
	}
	uc := NewListServices(provider, NewLocationDirectory(provider, nil), nil, catalog.PresenceDefaultAll)

	all, err := uc.Execute(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	only, err := uc.Execute(context.Background(), "LOC2")
	require.NoError(t, err)
	require.Len(t, only, 1)
	assert.Equal(t, "VA_LOC2", only[0].ID)
	assert.Equal(t, 30.0, only[0].Price)
	assert.Equal(t, 30, only[0].DurationMin)
}

func TestAvailabilityUsesLocalDayBoundaries(t *testing.T) {
	provider := &fakeProvider{locations: testLocations}
	uc := NewGetAvailability(provider, NewLocationDirectory(provider, nil))

	_, err := uc.Execute(context.Background(), GetAvailabilityInput{
		Date:               "2026-02-05",
		LocationID:         "LOC1",
		ServiceVariationID: "VA",
	})
	require.NoError(t, err)

	// New York midnight in winter is 05:00 UTC.
	assert.Equal(t, time.Date(2026, 2, 5, 5, 0, 0, 0, time.UTC), provider.lastQuery.StartAt)
	assert.Equal(t, time.Date(2026, 2, 6, 5, 0, 0, 0, time.UTC), provider.lastQuery.EndAt)
	assert.Equal(t, "LOC1", provider.lastQuery.LocationID)
	assert.Equal(t, "VA", provider.lastQuery.ServiceVariationID)
}

func TestAvailabilityRejectsBadDate(t *testing.T) {
	provider := &fakeProvider{locations: testLocations}
	uc := NewGetAvailability(provider, NewLocationDirectory(provider, nil))

	_, err := uc.Execute(context.Background(), GetAvailabilityInput{Date: "next tuesday", LocationID: "LOC1"})
	require.Error(t, err)
}

func TestListBookingsRendersInShopZone(t *testing.T) {
	repo := newFakeRepo()
	seedBooking(repo, nil)
	provider := &fakeProvider{locations: testLocations}
	uc := NewListBookings(repo, NewLocationDirectory(provider, nil))

	views, err := uc.Execute(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Thursday, February 5, 2026 at 3:30 PM", views[0].DisplayLong)
	assert.Equal(t, "3:30 PM", views[0].DisplayShort)
}

func TestListBookingsOnlyOwn(t *testing.T) {
	repo := newFakeRepo()
	seedBooking(repo, nil)
	provider := &fakeProvider{locations: testLocations}
	uc := NewListBookings(repo, NewLocationDirectory(provider, nil))

	views, err := uc.Execute(context.Background(), "someone-else")
	require.NoError(t, err)
	assert.Empty(t, views)
}
