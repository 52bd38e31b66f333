package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking-api/internal/audit"
	"github.com/BruksfildServices01/barber-booking-api/internal/civiltime"
	domain "github.com/BruksfildServices01/barber-booking-api/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking-api/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-api/internal/models"
)

type RescheduleBookingInput struct {
	BookingID string
	UserID    string
	NewDate   string
	NewTime   string
}

type RescheduleBookingOutput struct {
	Booking *models.Booking
	Warning *domain.SyncWarning
}

type RescheduleBooking struct {
	repo      domain.Repository
	provider  Provider
	locations *LocationDirectory
	audit     *audit.Dispatcher
	now       func() time.Time
}

func NewRescheduleBooking(
	repo domain.Repository,
	provider Provider,
	locations *LocationDirectory,
	auditDispatcher *audit.Dispatcher,
) *RescheduleBooking {
	return &RescheduleBooking{
		repo:      repo,
		provider:  provider,
		locations: locations,
		audit:     auditDispatcher,
		now:       time.Now,
	}
}

func (uc *RescheduleBooking) Execute(
	ctx context.Context,
	in RescheduleBookingInput,
) (*RescheduleBookingOutput, error) {

	// --------------------------------------------------
	// 1. Load, scoped to the owner
	// --------------------------------------------------
	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil || b.UserID != in.UserID {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	// --------------------------------------------------
	// 2. Normalize the new date/time
	// --------------------------------------------------
	newDay, err := civiltime.ParseDate(in.NewDate)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	newTime, err := civiltime.ParseTime(in.NewTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// --------------------------------------------------
	// 3. Minimum-notice gate — before any external call
	// --------------------------------------------------
	zone := uc.locations.ZoneID(ctx, b.LocationID)
	current, err := civiltime.Resolve(b.BookingDay, b.BookingTime, zone)
	if err != nil {
		return nil, err
	}
	if !domain.CanReschedule(uc.now(), current) {
		return nil, httperr.ErrBusiness("too_close_to_appointment")
	}

	// --------------------------------------------------
	// 4. Mirror on Square: re-fetch version, then update
	// --------------------------------------------------
	var warning *domain.SyncWarning
	if b.SquareBookingID != nil {
		warning = uc.mirrorReschedule(ctx, *b.SquareBookingID, newDay, newTime, zone)
	}

	// --------------------------------------------------
	// 5. Local update happens regardless of the mirror
	// --------------------------------------------------
	if err := uc.repo.UpdateBookingTime(ctx, b.ID, newDay, newTime); err != nil {
		return nil, err
	}
	b.BookingDay = newDay
	b.BookingTime = newTime

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_rescheduled",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"new_day": newDay, "new_time": newTime},
	})
	if warning != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &in.UserID,
			Action:   "booking_sync_failed",
			Entity:   "booking",
			EntityID: &b.ID,
			Metadata: map[string]any{"op": warning.Op, "reason": warning.Reason},
		})
	}

	return &RescheduleBookingOutput{Booking: b, Warning: warning}, nil
}

// mirrorReschedule is the provider's optimistic-concurrency two-step: the
// version token is fetched immediately before the update and echoed back,
// never cached across calls.
func (uc *RescheduleBooking) mirrorReschedule(
	ctx context.Context,
	squareBookingID string,
	newDay string,
	newTime string,
	zone string,
) *domain.SyncWarning {

	current, err := uc.provider.RetrieveBooking(ctx, squareBookingID)
	if err != nil {
		return domain.NewSyncWarning("reschedule", err)
	}

	startAt, err := civiltime.Resolve(newDay, newTime, zone)
	if err != nil {
		return domain.NewSyncWarning("reschedule", err)
	}

	current.StartAt = startAt.UTC()
	if _, err := uc.provider.UpdateBooking(ctx, squareBookingID, current); err != nil {
		return domain.NewSyncWarning("reschedule", err)
	}
	return nil
}
