package order

import (
	"fmt"

	"chefbook/internal/pkg/errs"
)

// Status represents the lifecycle state of a booking order.
// It implements a state machine with defined transitions so orders follow
// the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Confirmed ──> Completed
//	          ├──> Rejected
//	          └──> Expired        (timer lapse, sweep or explicit declare)
//
// Rejected, Completed, Expired and Cancelled are terminal. Cancelled is a
// legacy label kept only so historical rows remain readable; no code path
// produces it.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed.
	// The chef has a fixed acceptance window to act before the order
	// becomes eligible for expiry.
	Pending

	// Confirmed indicates the chef accepted the order within the window.
	Confirmed

	// Rejected indicates the chef declined the order. Terminal.
	Rejected

	// Completed indicates the chef marked the confirmed session done. Terminal.
	Completed

	// Expired indicates the acceptance window lapsed with no chef action.
	// Terminal. This is the canonical "chef never responded" outcome.
	Expired

	// Cancelled is a legacy alternate label for the expired outcome.
	// Terminal. Retained as a legal persisted value only.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Rejected:  "Rejected",
		Completed: "Completed",
		Expired:   "Expired",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Rejected:  "Rejected",
		Completed: "Completed",
		Expired:   "Expired",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid. This is used when
// reconstructing orders from persistence or parsing external input.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status ends the order's life.
// Terminal orders are never transitioned again, only read.
func (s Status) IsTerminal() bool {
	switch s {
	case Rejected, Completed, Expired, Cancelled:
		return true
	case Unknown, Pending, Confirmed:
		return false
	}
	return false
}

// Accept transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed
//
// Returns (Confirmed, nil) on a valid transition, or (0, ConflictError) if the
// order is not Pending. Used by Order.AcceptBy to enforce the state machine.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewConflictError(
			fmt.Sprintf("only pending orders can be accepted, order is %s", s),
		)
	}

	return Confirmed, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Pending -> Rejected
//
// Returns (Rejected, nil) on a valid transition, or (0, ConflictError) if the
// order is not Pending.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewConflictError(
			fmt.Sprintf("only pending orders can be rejected, order is %s", s),
		)
	}

	return Rejected, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Confirmed -> Completed
//
// A Pending order cannot jump straight to Completed; the chef must accept
// first. Returns (Completed, nil) on a valid transition, or (0, ConflictError).
func (s Status) Complete() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewConflictError(
			fmt.Sprintf("only confirmed orders can be completed, order is %s", s),
		)
	}

	return Completed, nil
}

// Expire transitions the status to Expired.
//
// Valid transitions:
//   - Pending -> Expired
//
// An order may be expired only while Pending; once the chef acted, the window
// no longer applies. Returns (Expired, nil) on a valid transition, or
// (0, ConflictError).
func (s Status) Expire() (Status, error) {
	if s != Pending {
		return 0, errs.NewConflictError(
			fmt.Sprintf("only pending orders can be expired, order is %s", s),
		)
	}

	return Expired, nil
}
