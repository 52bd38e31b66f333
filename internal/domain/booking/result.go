package booking

import "fmt"

// SyncWarning records a failed best-effort mirror to the booking provider.
// The local operation still completed; callers must surface this as a
// notice, never as a failure.
type SyncWarning struct {
	Op     string // "create", "reschedule", "cancel"
	Reason string
}

func (w *SyncWarning) Message() string {
	return fmt.Sprintf("booking %s applied locally, but the booking system could not be notified: %s", w.Op, w.Reason)
}

func NewSyncWarning(op string, err error) *SyncWarning {
	reason := "unknown error"
	if err != nil {
		reason = err.Error()
	}
	return &SyncWarning{Op: op, Reason: reason}
}
