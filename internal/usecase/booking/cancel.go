package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking-api/internal/audit"
	"github.com/BruksfildServices01/barber-booking-api/internal/civiltime"
	domain "github.com/BruksfildServices01/barber-booking-api/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking-api/internal/httperr"
)

type CancelBookingInput struct {
	BookingID string
	UserID    string
}

type CancelBookingOutput struct {
	// Cancellation is the fee tier that applied at the moment of
	// cancellation, for the confirmation screen.
	Cancellation domain.Cancellation
	Warning      *domain.SyncWarning
}

type CancelBooking struct {
	repo      domain.Repository
	provider  Provider
	locations *LocationDirectory
	audit     *audit.Dispatcher
	now       func() time.Time
}

func NewCancelBooking(
	repo domain.Repository,
	provider Provider,
	locations *LocationDirectory,
	auditDispatcher *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:      repo,
		provider:  provider,
		locations: locations,
		audit:     auditDispatcher,
		now:       time.Now,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	in CancelBookingInput,
) (*CancelBookingOutput, error) {

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil || b.UserID != in.UserID {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	zone := uc.locations.ZoneID(ctx, b.LocationID)
	appointment, err := civiltime.Resolve(b.BookingDay, b.BookingTime, zone)
	if err != nil {
		return nil, err
	}
	fee := domain.ClassifyCancellation(uc.now(), appointment)

	// --------------------------------------------------
	// External cancel first: a crash between the two steps leaves Square
	// cancelled and the local row present — the recoverable inconsistency.
	// --------------------------------------------------
	var warning *domain.SyncWarning
	if b.SquareBookingID != nil {
		warning = uc.mirrorCancel(ctx, *b.SquareBookingID)
	}

	// --------------------------------------------------
	// Local delete is the user-facing guarantee
	// --------------------------------------------------
	rows, err := uc.repo.DeleteBooking(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// A concurrent cancel got here first.
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"tier": fee.Tier, "fee_fraction": fee.FeeFraction},
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

	return &CancelBookingOutput{Cancellation: fee, Warning: warning}, nil
}

func (uc *CancelBooking) mirrorCancel(ctx context.Context, squareBookingID string) *domain.SyncWarning {
	current, err := uc.provider.RetrieveBooking(ctx, squareBookingID)
	if err != nil {
		return domain.NewSyncWarning("cancel", err)
	}
	if err := uc.provider.CancelBooking(ctx, squareBookingID, current.Version); err != nil {
		return domain.NewSyncWarning("cancel", err)
	}
	return nil
}
