package models

import "time"

// Booking is the locally persisted record, the user-visible source of
// truth. booking_day/booking_time are civil wire values; the location's
// zone resolves them to an instant at read time.
type Booking struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"type:uuid;index;not null" json:"user_id"`

	ServiceID  string `gorm:"size:64;not null" json:"service_id"` // Square variation id
	LocationID string `gorm:"size:64;not null" json:"location_id"`

	BookingDay    string `gorm:"size:10;not null" json:"booking_day"`  // YYYY-MM-DD
	BookingTime   string `gorm:"size:8;not null" json:"booking_time"`  // HH:MM:SS
	BookingLength int    `json:"booking_length"`                       // minutes, snapshot at creation

	Notes string `gorm:"size:255" json:"notes"`

	// NULL until the booking is mirrored on Square. A booking can live
	// indefinitely in this state; cancel/reschedule tolerate it.
	SquareBookingID *string `gorm:"size:64" json:"square_booking_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
