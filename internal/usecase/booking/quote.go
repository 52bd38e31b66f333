package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking-api/internal/civiltime"
	domain "github.com/BruksfildServices01/barber-booking-api/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking-api/internal/httperr"
)

// CancellationQuoteOutput backs the cancel modal: which fee tier would
// apply right now, and whether a reschedule is still allowed.
type CancellationQuoteOutput struct {
	Cancellation   domain.Cancellation `json:"cancellation"`
	CanReschedule  bool                `json:"can_reschedule"`
	AppointmentFor string              `json:"appointment_for"` // long display string in the shop's zone
}

type CancellationQuote struct {
	repo      domain.Repository
	locations *LocationDirectory
	now       func() time.Time
}

func NewCancellationQuote(repo domain.Repository, locations *LocationDirectory) *CancellationQuote {
	return &CancellationQuote{repo: repo, locations: locations, now: time.Now}
}

func (uc *CancellationQuote) Execute(
	ctx context.Context,
	bookingID string,
	userID string,
) (*CancellationQuoteOutput, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil || b.UserID != userID {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	zone := uc.locations.ZoneID(ctx, b.LocationID)
	appointment, err := civiltime.Resolve(b.BookingDay, b.BookingTime, zone)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	return &CancellationQuoteOutput{
		Cancellation:   domain.ClassifyCancellation(now, appointment),
		CanReschedule:  domain.CanReschedule(now, appointment),
		AppointmentFor: civiltime.FormatDisplay(appointment, zone, civiltime.StyleLong),
	}, nil
}
