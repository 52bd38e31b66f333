package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking-api/internal/catalog"
	"github.com/BruksfildServices01/barber-booking-api/internal/models"
	"github.com/BruksfildServices01/barber-booking-api/internal/square"
)

var errNotFound = errors.New("record not found")

func profileFor(id, customerID string) *models.Profile {
	return &models.Profile{ID: id, SquareCustomerID: customerID}
}

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	bookings map[string]*models.Booking
	profiles map[string]*models.Profile

	createErr error
	updateErr error
	deleteErr error

	deleteCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		bookings: map[string]*models.Booking{},
		profiles: map[string]*models.Profile{},
	}
}

func (r *fakeRepo) GetBooking(_ context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, errNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeRepo) ListBookingsForUser(_ context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *fakeRepo) UpdateBookingTime(_ context.Context, id, day, tod string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	b, ok := r.bookings[id]
	if !ok {
		return errNotFound
	}
	b.BookingDay = day
	b.BookingTime = tod
	return nil
}

func (r *fakeRepo) SetSquareBookingID(_ context.Context, id, squareID string) error {
	b, ok := r.bookings[id]
	if !ok {
		return errNotFound
	}
	b.SquareBookingID = &squareID
	return nil
}

func (r *fakeRepo) DeleteBooking(_ context.Context, id string) (int64, error) {
	r.deleteCalls++
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	if _, ok := r.bookings[id]; !ok {
		return 0, nil
	}
	delete(r.bookings, id)
	return 1, nil
}

func (r *fakeRepo) GetProfile(_ context.Context, userID string) (*models.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, errNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeRepo) SaveProfile(_ context.Context, p *models.Profile) error {
	copied := *p
	r.profiles[p.ID] = &copied
	return nil
}

// ======================================================
// FAKE PROVIDER
// ======================================================

type fakeProvider struct {
	locations []catalog.Location
	rawCat    catalog.RawCatalog
	slots     []square.Slot

	createBookingErr error
	retrieveErr      error
	updateErr        error
	cancelErr        error
	customerErr      error

	retrievedVersion int

	createBookingCalls int
	retrieveCalls      int
	updateCalls        int
	cancelCalls        int

	lastCreated       square.Booking
	lastUpdated       square.Booking
	lastCancelVersion int
	lastQuery         square.AvailabilityQuery
}

func (p *fakeProvider) ListLocations(context.Context) ([]catalog.Location, error) {
	return p.locations, nil
}

func (p *fakeProvider) ListCatalog(context.Context) (catalog.RawCatalog, error) {
	return p.rawCat, nil
}

func (p *fakeProvider) SearchAvailability(_ context.Context, q square.AvailabilityQuery) ([]square.Slot, error) {
	p.lastQuery = q
	return p.slots, nil
}

func (p *fakeProvider) CreateCustomer(_ context.Context, _, _, referenceID string) (string, error) {
	if p.customerErr != nil {
		return "", p.customerErr
	}
	return "CUST_" + referenceID, nil
}

func (p *fakeProvider) CreateBooking(_ context.Context, b square.Booking) (square.Booking, error) {
	p.createBookingCalls++
	if p.createBookingErr != nil {
		return square.Booking{}, p.createBookingErr
	}
	p.lastCreated = b
	b.ID = "SQB1"
	return b, nil
}

func (p *fakeProvider) RetrieveBooking(_ context.Context, id string) (square.Booking, error) {
	p.retrieveCalls++
	if p.retrieveErr != nil {
		return square.Booking{}, p.retrieveErr
	}
	return square.Booking{
		ID:         id,
		Version:    p.retrievedVersion,
		LocationID: "LOC1",
		CustomerID: "CUST1",
	}, nil
}

func (p *fakeProvider) UpdateBooking(_ context.Context, _ string, b square.Booking) (square.Booking, error) {
	p.updateCalls++
	if p.updateErr != nil {
		return square.Booking{}, p.updateErr
	}
	p.lastUpdated = b
	b.Version++
	return b, nil
}

func (p *fakeProvider) CancelBooking(_ context.Context, _ string, version int) error {
	p.cancelCalls++
	if p.cancelErr != nil {
		return p.cancelErr
	}
	p.lastCancelVersion = version
	return nil
}
