package square

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking-api/internal/catalog"
)

const (
	defaultBaseURL = "https://connect.squareup.com"
	defaultTimeout = 20 * time.Second
)

// APIError is a non-2xx answer from Square.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("square: status %d: %s", e.Status, e.Body)
}

// ======================================================
// CLIENT
// ======================================================

type Client struct {
	baseURL    string
	token      string
	apiVersion string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(token, apiVersion string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    defaultBaseURL,
		token:      token,
		apiVersion: apiVersion,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}
}

// WithBaseURL points the client somewhere else (sandbox, tests).
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = base
	return c
}

// ======================================================
// CATALOG / LOCATIONS
// ======================================================

func (c *Client) ListLocations(ctx context.Context) ([]catalog.Location, error) {
	var out struct {
		Locations []catalog.Location `json:"locations"`
	}
	if err := c.do(ctx, http.MethodGet, "/v2/locations", nil, &out); err != nil {
		return nil, err
	}
	return out.Locations, nil
}

// ListCatalog fetches the item catalog. The body is decoded leniently: a
// malformed feed yields an empty catalog, matching the normalizer's
// degrade-to-empty contract.
func (c *Client) ListCatalog(ctx context.Context) (catalog.RawCatalog, error) {
	body, err := c.doRaw(ctx, http.MethodGet, "/v2/catalog/list?types=ITEM", nil)
	if err != nil {
		return catalog.RawCatalog{}, err
	}
	return catalog.Decode(body), nil
}

// ======================================================
// AVAILABILITY
// ======================================================

func (c *Client) SearchAvailability(ctx context.Context, q AvailabilityQuery) ([]Slot, error) {
	var req availabilitySearchRequest
	req.Query.Filter.LocationID = q.LocationID
	req.Query.Filter.StartAtRange.StartAt = q.StartAt
	req.Query.Filter.StartAtRange.EndAt = q.EndAt
	if q.ServiceVariationID != "" {
		req.Query.Filter.SegmentFilters = []segmentFilter{{ServiceVariationID: q.ServiceVariationID}}
	}

	var out availabilitySearchResponse
	if err := c.do(ctx, http.MethodPost, "/v2/bookings/availability/search", req, &out); err != nil {
		return nil, err
	}
	return out.Availabilities, nil
}

// ======================================================
// CUSTOMERS
// ======================================================

func (c *Client) CreateCustomer(ctx context.Context, name, email, referenceID string) (string, error) {
	req := createCustomerRequest{
		GivenName:    name,
		EmailAddress: email,
		ReferenceID:  referenceID,
	}

	var out customerEnvelope
	if err := c.do(ctx, http.MethodPost, "/v2/customers", req, &out); err != nil {
		return "", err
	}
	return out.Customer.ID, nil
}

// ======================================================
// BOOKINGS
// ======================================================

func (c *Client) CreateBooking(ctx context.Context, b Booking) (Booking, error) {
	var out bookingEnvelope
	if err := c.do(ctx, http.MethodPost, "/v2/bookings", bookingEnvelope{Booking: b}, &out); err != nil {
		return Booking{}, err
	}
	return out.Booking, nil
}

// RetrieveBooking returns the provider's current record, including the
// version token required for any mutation. Callers must fetch this
// immediately before updating or cancelling — stale versions are rejected.
func (c *Client) RetrieveBooking(ctx context.Context, bookingID string) (Booking, error) {
	var out bookingEnvelope
	path := "/v2/bookings/" + url.PathEscape(bookingID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return Booking{}, err
	}
	return out.Booking, nil
}

// UpdateBooking moves a booking. The payload must echo the last-seen
// version plus the fields Square insists on re-receiving.
func (c *Client) UpdateBooking(ctx context.Context, bookingID string, b Booking) (Booking, error) {
	var out bookingEnvelope
	path := "/v2/bookings/" + url.PathEscape(bookingID)
	if err := c.do(ctx, http.MethodPut, path, bookingEnvelope{Booking: b}, &out); err != nil {
		return Booking{}, err
	}
	return out.Booking, nil
}

func (c *Client) CancelBooking(ctx context.Context, bookingID string, version int) error {
	path := "/v2/bookings/" + url.PathEscape(bookingID) + "/cancel"
	return c.do(ctx, http.MethodPost, path, cancelBookingRequest{BookingVersion: version}, nil)
}

// ======================================================
// TRANSPORT
// ======================================================

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	body, err := c.doRaw(ctx, method, path, in)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("square: decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) doRaw(ctx context.Context, method, path string, in any) ([]byte, error) {
	var reqBody io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("square: encode %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Square-Version", c.apiVersion)
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("square request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("square returned error status",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
