package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-booking-api/internal/models"
)

type Repository interface {
	// -------- Booking --------
	GetBooking(
		ctx context.Context,
		bookingID string,
	) (*models.Booking, error)

	ListBookingsForUser(
		ctx context.Context,
		userID string,
	) ([]models.Booking, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	UpdateBookingTime(
		ctx context.Context,
		bookingID string,
		day string,
		timeOfDay string,
	) error

	SetSquareBookingID(
		ctx context.Context,
		bookingID string,
		squareBookingID string,
	) error

	// DeleteBooking reports how many rows were removed. Zero rows is how a
	// lost double-tap race surfaces; callers map it to not-found.
	DeleteBooking(
		ctx context.Context,
		bookingID string,
	) (int64, error)

	// -------- Profile --------
	GetProfile(
		ctx context.Context,
		userID string,
	) (*models.Profile, error)

	SaveProfile(
		ctx context.Context,
		p *models.Profile,
	) error
}
