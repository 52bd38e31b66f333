package square

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient("test-token", "2025-10-16", nil).WithBaseURL(ts.URL), ts
}

func TestListLocations(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/locations", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "2025-10-16", r.Header.Get("Square-Version"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"locations": []map[string]any{
				{"id": "LOC1", "business_name": "Downtown", "timezone": "America/New_York"},
			},
		})
	})

	locs, err := c.ListLocations(context.Background())
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, "LOC1", locs[0].ID)
	assert.Equal(t, "America/New_York", locs[0].Timezone)
}

func TestListCatalogToleratesMalformedFeed(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"objects": "garbage"}`))
	})

	raw, err := c.ListCatalog(context.Background())
	require.NoError(t, err)
	assert.Empty(t, raw.Objects)
}

func TestSearchAvailability(t *testing.T) {
	var captured map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/bookings/availability/search", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"availabilities": []map[string]any{
				{"start_at": "2026-02-05T15:00:00Z", "location_id": "LOC1"},
			},
		})
	})

	slots, err := c.SearchAvailability(context.Background(), AvailabilityQuery{
		LocationID:         "LOC1",
		ServiceVariationID: "VAR1",
		StartAt:            time.Date(2026, 2, 5, 5, 0, 0, 0, time.UTC),
		EndAt:              time.Date(2026, 2, 6, 5, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, time.Date(2026, 2, 5, 15, 0, 0, 0, time.UTC), slots[0].StartAt)

	filter := captured["query"].(map[string]any)["filter"].(map[string]any)
	assert.Equal(t, "LOC1", filter["location_id"])
	segs := filter["segment_filters"].([]any)
	require.Len(t, segs, 1)
	assert.Equal(t, "VAR1", segs[0].(map[string]any)["service_variation_id"])
}

func TestCreateRetrieveUpdateCancelBooking(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v2/bookings":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"booking": map[string]any{"id": "SQB1", "version": 0},
			})
		case r.Method == http.MethodGet && r.URL.Path == "/v2/bookings/SQB1":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"booking": map[string]any{
					"id": "SQB1", "version": 3,
					"location_id": "LOC1", "customer_id": "CUST1",
					"start_at": "2026-02-05T15:00:00Z",
				},
			})
		case r.Method == http.MethodPut && r.URL.Path == "/v2/bookings/SQB1":
			var req map[string]any
			_ = json.NewDecoder(r.Body).Decode(&req)
			// The update must echo the last-seen version.
			assert.Equal(t, float64(3), req["booking"].(map[string]any)["version"])
			_ = json.NewEncoder(w).Encode(map[string]any{
				"booking": map[string]any{"id": "SQB1", "version": 4},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/v2/bookings/SQB1/cancel":
			var req map[string]any
			_ = json.NewDecoder(r.Body).Decode(&req)
			assert.Equal(t, float64(3), req["booking_version"])
			_ = json.NewEncoder(w).Encode(map[string]any{"booking": map[string]any{"id": "SQB1"}})
		default:
			http.Error(w, "unexpected call", http.StatusBadRequest)
		}
	})

	ctx := context.Background()

	created, err := c.CreateBooking(ctx, Booking{LocationID: "LOC1", CustomerID: "CUST1"})
	require.NoError(t, err)
	assert.Equal(t, "SQB1", created.ID)

	current, err := c.RetrieveBooking(ctx, "SQB1")
	require.NoError(t, err)
	assert.Equal(t, 3, current.Version)

	current.StartAt = time.Date(2026, 2, 6, 16, 0, 0, 0, time.UTC)
	updated, err := c.UpdateBooking(ctx, "SQB1", current)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Version)

	require.NoError(t, c.CancelBooking(ctx, "SQB1", current.Version))
}

func TestErrorStatusSurfacesAPIError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"code":"STALE_VERSION"}]}`, http.StatusConflict)
	})

	_, err := c.RetrieveBooking(context.Background(), "SQB1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
}
