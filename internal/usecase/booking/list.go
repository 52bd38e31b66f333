package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-booking-api/internal/civiltime"
	domain "github.com/BruksfildServices01/barber-booking-api/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking-api/internal/models"
)

// BookingView is a booking plus its display rendering, resolved through
// the location's zone — never the server's.
type BookingView struct {
	models.Booking
	DisplayLong  string `json:"display_long"`  // "Monday, October 28, 2025 at 3:30 PM"
	DisplayShort string `json:"display_short"` // "3:30 PM"
}

type ListBookings struct {
	repo      domain.Repository
	locations *LocationDirectory
}

func NewListBookings(repo domain.Repository, locations *LocationDirectory) *ListBookings {
	return &ListBookings{repo: repo, locations: locations}
}

func (uc *ListBookings) Execute(ctx context.Context, userID string) ([]BookingView, error) {
	bookings, err := uc.repo.ListBookingsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := BookingView{Booking: b}

		zone := uc.locations.ZoneID(ctx, b.LocationID)
		if instant, err := civiltime.Resolve(b.BookingDay, b.BookingTime, zone); err == nil {
			view.DisplayLong = civiltime.FormatDisplay(instant, zone, civiltime.StyleLong)
			view.DisplayShort = civiltime.FormatDisplay(instant, zone, civiltime.StyleShort)
		}
		views = append(views, view)
	}

	return views, nil
}
