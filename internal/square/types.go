package square

import "time"

// Wire shapes for the Square Bookings / Customers APIs.

type Booking struct {
	ID                  string               `json:"id,omitempty"`
	Version             int                  `json:"version"`
	LocationID          string               `json:"location_id"`
	CustomerID          string               `json:"customer_id"`
	StartAt             time.Time            `json:"start_at"`
	AppointmentSegments []AppointmentSegment `json:"appointment_segments"`
	CustomerNote        string               `json:"customer_note,omitempty"`
}

type AppointmentSegment struct {
	TeamMemberID            string `json:"team_member_id"`
	ServiceVariationID      string `json:"service_variation_id"`
	ServiceVariationVersion int64  `json:"service_variation_version"`
	DurationMinutes         int    `json:"duration_minutes,omitempty"`
}

// Slot is one open start time returned by availability search.
type Slot struct {
	StartAt    time.Time `json:"start_at"`
	LocationID string    `json:"location_id,omitempty"`
}

// AvailabilityQuery searches open slots inside [StartAt, EndAt) at one
// location. The range must come from civiltime.DayRange so the day
// boundary follows the location's zone.
type AvailabilityQuery struct {
	LocationID         string
	ServiceVariationID string
	StartAt            time.Time
	EndAt              time.Time
}

type bookingEnvelope struct {
	Booking Booking `json:"booking"`
}

type cancelBookingRequest struct {
	BookingVersion int `json:"booking_version"`
}

type availabilitySearchRequest struct {
	Query struct {
		Filter struct {
			LocationID   string `json:"location_id"`
			StartAtRange struct {
				StartAt time.Time `json:"start_at"`
				EndAt   time.Time `json:"end_at"`
			} `json:"start_at_range"`
			SegmentFilters []segmentFilter `json:"segment_filters,omitempty"`
		} `json:"filter"`
	} `json:"query"`
}

type segmentFilter struct {
	ServiceVariationID string `json:"service_variation_id"`
}

type availabilitySearchResponse struct {
	Availabilities []Slot `json:"availabilities"`
}

type customerEnvelope struct {
	Customer struct {
		ID string `json:"id"`
	} `json:"customer"`
}

type createCustomerRequest struct {
	GivenName    string `json:"given_name,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
	ReferenceID  string `json:"reference_id,omitempty"`
}
