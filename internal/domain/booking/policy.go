package booking

import "time"

// ======================================================
// Minimum-notice window
// ======================================================

// MinNoticeHours is the cancellation/reschedule notice window. At or past
// this many hours out, cancellation is free and rescheduling is allowed.
const MinNoticeHours = 24

type Tier string

const (
	TierNoCharge      Tier = "no_charge"
	TierPartialCharge Tier = "partial_charge"
	TierFullCharge    Tier = "full_charge"
)

type Cancellation struct {
	Tier        Tier    `json:"tier"`
	FeeFraction float64 `json:"fee_fraction"`
}

// ======================================================
// Policy (pure — instants in, decision out)
// ======================================================

// ClassifyCancellation maps the gap between now and the appointment onto
// the fee tiers. Exactly 24h out is still free; exactly at (or past) the
// appointment is a missed appointment, charged in full.
func ClassifyCancellation(now, appointment time.Time) Cancellation {
	remaining := appointment.Sub(now)

	switch {
	case remaining >= MinNoticeHours*time.Hour:
		return Cancellation{Tier: TierNoCharge, FeeFraction: 0}
	case remaining > 0:
		return Cancellation{Tier: TierPartialCharge, FeeFraction: 0.5}
	default:
		return Cancellation{Tier: TierFullCharge, FeeFraction: 1.0}
	}
}

// CanReschedule allows a move only with at least the full notice window
// remaining.
func CanReschedule(now, appointment time.Time) bool {
	return appointment.Sub(now) >= MinNoticeHours*time.Hour
}
