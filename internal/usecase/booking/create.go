package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking-api/internal/audit"
	"github.com/BruksfildServices01/barber-booking-api/internal/cart"
	"github.com/BruksfildServices01/barber-booking-api/internal/civiltime"
	domain "github.com/BruksfildServices01/barber-booking-api/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking-api/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-api/internal/models"
	"github.com/BruksfildServices01/barber-booking-api/internal/square"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateBookingInput struct {
	UserID    string
	UserName  string
	UserEmail string

	Cart cart.Cart

	Date       string
	Time       string
	LocationID string
	Notes      string
}

type CreateBookingOutput struct {
	Booking *models.Booking

	// Warning is set when the local booking was created but the Square
	// mirror failed. The operation still succeeded.
	Warning *domain.SyncWarning
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo         domain.Repository
	provider     Provider
	locations    *LocationDirectory
	audit        *audit.Dispatcher
	teamMemberID string
	now          func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	provider Provider,
	locations *LocationDirectory,
	auditDispatcher *audit.Dispatcher,
	teamMemberID string,
) *CreateBooking {
	return &CreateBooking{
		repo:         repo,
		provider:     provider,
		locations:    locations,
		audit:        auditDispatcher,
		teamMemberID: teamMemberID,
		now:          time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*CreateBookingOutput, error) {

	// --------------------------------------------------
	// 1. Cart must have something in it
	// --------------------------------------------------
	if in.Cart.IsEmpty() {
		return nil, httperr.ErrBusiness("empty_cart")
	}

	// --------------------------------------------------
	// 2. Normalize the human-entered date/time to wire format
	// --------------------------------------------------
	day, err := civiltime.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	timeOfDay, err := civiltime.ParseTime(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// --------------------------------------------------
	// 3. Booking length is a snapshot of the cart's total
	// --------------------------------------------------
	length := in.Cart.TotalMinutes()
	primary := in.Cart.Lines[0].Service

	// --------------------------------------------------
	// 4. Persist locally first — this is the source of truth
	// --------------------------------------------------
	b := &models.Booking{
		ID:            uuid.NewString(),
		UserID:        in.UserID,
		ServiceID:     primary.VariationID,
		LocationID:    in.LocationID,
		BookingDay:    day,
		BookingTime:   timeOfDay,
		BookingLength: length,
		Notes:         in.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Best-effort mirror on Square
	// --------------------------------------------------
	warning := uc.mirrorCreate(ctx, in, b, day, timeOfDay)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
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

	return &CreateBookingOutput{Booking: b, Warning: warning}, nil
}

// mirrorCreate pushes the new booking to Square. Any failure is demoted to
// a SyncWarning; the local record stays regardless.
func (uc *CreateBooking) mirrorCreate(
	ctx context.Context,
	in CreateBookingInput,
	b *models.Booking,
	day string,
	timeOfDay string,
) *domain.SyncWarning {

	customerID, err := uc.ensureCustomer(ctx, in)
	if err != nil {
		return domain.NewSyncWarning("create", err)
	}

	zone := uc.locations.ZoneID(ctx, in.LocationID)
	startAt, err := civiltime.Resolve(day, timeOfDay, zone)
	if err != nil {
		return domain.NewSyncWarning("create", err)
	}

	created, err := uc.provider.CreateBooking(ctx, square.Booking{
		LocationID: in.LocationID,
		CustomerID: customerID,
		StartAt:    startAt.UTC(),
		AppointmentSegments: []square.AppointmentSegment{{
			TeamMemberID:            uc.teamMemberID,
			ServiceVariationID:      b.ServiceID,
			ServiceVariationVersion: 1,
			DurationMinutes:         b.BookingLength,
		}},
		CustomerNote: in.Notes,
	})
	if err != nil {
		return domain.NewSyncWarning("create", err)
	}

	if err := uc.repo.SetSquareBookingID(ctx, b.ID, created.ID); err != nil {
		return domain.NewSyncWarning("create", err)
	}
	b.SquareBookingID = &created.ID
	return nil
}

// ensureCustomer returns the user's Square customer id, creating both the
// customer and the local profile on first booking.
func (uc *CreateBooking) ensureCustomer(
	ctx context.Context,
	in CreateBookingInput,
) (string, error) {

	profile, err := uc.repo.GetProfile(ctx, in.UserID)
	if err == nil && profile.SquareCustomerID != "" {
		return profile.SquareCustomerID, nil
	}

	customerID, err := uc.provider.CreateCustomer(ctx, in.UserName, in.UserEmail, in.UserID)
	if err != nil {
		return "", err
	}

	if err := uc.repo.SaveProfile(ctx, &models.Profile{
		ID:               in.UserID,
		SquareCustomerID: customerID,
	}); err != nil {
		return "", err
	}

	return customerID, nil
}
