package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking-api/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking-api/internal/httperr"
)

func newQuoteUC(repo *fakeRepo, provider *fakeProvider, now time.Time) *CancellationQuote {
	uc := NewCancellationQuote(repo, NewLocationDirectory(provider, nil))
	uc.now = func() time.Time { return now }
	return uc
}

func TestCancellationQuoteNotFound(t *testing.T) {
	repo := newFakeRepo()
	seedBooking(repo, nil)
	provider := &fakeProvider{locations: testLocations}
	uc := newQuoteUC(repo, provider, appointmentUTC.Add(-48*time.Hour))

	_, err := uc.Execute(context.Background(), "bk-1", "someone-else")
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestCancellationQuoteTiers(t *testing.T) {
	cases := []struct {
		name          string
		now           time.Time
		tier          domain.Tier
		canReschedule bool
	}{
		{"two days out", appointmentUTC.Add(-48 * time.Hour), domain.TierNoCharge, true},
		{"exactly at the window", appointmentUTC.Add(-24 * time.Hour), domain.TierNoCharge, true},
		{"ten hours out", appointmentUTC.Add(-10 * time.Hour), domain.TierPartialCharge, false},
		{"already started", appointmentUTC.Add(time.Minute), domain.TierFullCharge, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRepo()
			seedBooking(repo, nil)
			provider := &fakeProvider{locations: testLocations}
			uc := newQuoteUC(repo, provider, tc.now)

			out, err := uc.Execute(context.Background(), "bk-1", "user-1")
			require.NoError(t, err)
			assert.Equal(t, tc.tier, out.Cancellation.Tier)
			assert.Equal(t, tc.canReschedule, out.CanReschedule)
		})
	}
}

func TestCancellationQuoteDisplaysShopLocalTime(t *testing.T) {
	repo := newFakeRepo()
	seedBooking(repo, nil)
	provider := &fakeProvider{locations: testLocations}
	uc := newQuoteUC(repo, provider, appointmentUTC.Add(-48*time.Hour))

	out, err := uc.Execute(context.Background(), "bk-1", "user-1")
	require.NoError(t, err)
	assert.Contains(t, out.AppointmentFor, "February 5, 2026")
	assert.Contains(t, out.AppointmentFor, "3:30 PM")
}
