package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking-api/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking-api/internal/httperr"
)

func newCancelUC(repo *fakeRepo, provider *fakeProvider, now time.Time) *CancelBooking {
	uc := NewCancelBooking(repo, provider, NewLocationDirectory(provider, nil), testDispatcher())
	uc.now = func() time.Time { return now }
	return uc
}

func TestCancelNotFound(t *testing.T) {
	repo := newFakeRepo()
	provider := &fakeProvider{locations: testLocations}
	uc := newCancelUC(repo, provider, appointmentUTC.Add(-48*time.Hour))

	_, err := uc.Execute(context.Background(), CancelBookingInput{BookingID: "missing", UserID: "user-1"})
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
	assert.Zero(t, repo.deleteCalls)
}

func TestCancelEarlyIsFreeAndMirrored(t *testing.T) {
	repo := newFakeRepo()
	sq := "SQB1"
	seedBooking(repo, &sq)
	provider := &fakeProvider{locations: testLocations, retrievedVersion: 5}
	uc := newCancelUC(repo, provider, appointmentUTC.Add(-48*time.Hour))

	out, err := uc.Execute(context.Background(), CancelBookingInput{BookingID: "bk-1", UserID: "user-1"})
	require.NoError(t, err)
	require.Nil(t, out.Warning)

	assert.Equal(t, domain.TierNoCharge, out.Cancellation.Tier)
	assert.Zero(t, out.Cancellation.FeeFraction)

	assert.Equal(t, 1, provider.retrieveCalls)
	assert.Equal(t, 1, provider.cancelCalls)
	assert.Equal(t, 5, provider.lastCancelVersion)
	assert.Empty(t, repo.bookings)
}

func TestCancelFeeTiers(t *testing.T) {
	cases := []struct {
		name     string
		now      time.Time
		tier     domain.Tier
		fraction float64
	}{
		{"late cancel pays half", appointmentUTC.Add(-10 * time.Hour), domain.TierPartialCharge, 0.5},
		{"after start pays full", appointmentUTC.Add(2 * time.Hour), domain.TierFullCharge, 1.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRepo()
			seedBooking(repo, nil)
			provider := &fakeProvider{locations: testLocations}
			uc := newCancelUC(repo, provider, tc.now)

			out, err := uc.Execute(context.Background(), CancelBookingInput{BookingID: "bk-1", UserID: "user-1"})
			require.NoError(t, err)
			assert.Equal(t, tc.tier, out.Cancellation.Tier)
			assert.Equal(t, tc.fraction, out.Cancellation.FeeFraction)
			assert.Empty(t, repo.bookings)
		})
	}
}

func TestCancelExternalFailureStillDeletesLocally(t *testing.T) {
	repo := newFakeRepo()
	sq := "SQB1"
	seedBooking(repo, &sq)
	provider := &fakeProvider{locations: testLocations, cancelErr: errors.New("timeout")}
	uc := newCancelUC(repo, provider, appointmentUTC.Add(-48*time.Hour))

	out, err := uc.Execute(context.Background(), CancelBookingInput{BookingID: "bk-1", UserID: "user-1"})
	require.NoError(t, err)
	require.NotNil(t, out.Warning)
	assert.Equal(t, "cancel", out.Warning.Op)
	assert.Empty(t, repo.bookings)
}

func TestCancelDoubleTapReportsNotFound(t *testing.T) {
	repo := newFakeRepo()
	seedBooking(repo, nil)
	provider := &fakeProvider{locations: testLocations}
	uc := newCancelUC(repo, provider, appointmentUTC.Add(-48*time.Hour))

	_, err := uc.Execute(context.Background(), CancelBookingInput{BookingID: "bk-1", UserID: "user-1"})
	require.NoError(t, err)

	// The row is gone by the time the second request reaches the delete.
	_, err = uc.Execute(context.Background(), CancelBookingInput{BookingID: "bk-1", UserID: "user-1"})
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}
