package order

import (
	"fmt"

	"chefbook/internal/pkg/errs"
)

// PaymentMethod identifies how the customer settles the order total.
type PaymentMethod int

const (
	// MethodUnknown represents an invalid or undefined payment method.
	MethodUnknown PaymentMethod = iota

	// Cash is settled in person at the session.
	Cash

	// QRCode is scanned-and-paid, then verified by the chef.
	QRCode

	// UPI is transferred directly, then verified by the chef.
	UPI
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		MethodUnknown: "Unknown",
		Cash:          "Cash",
		QRCode:        "QRCode",
		UPI:           "UPI",
	}
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	switch m {
	case Cash, QRCode, UPI:
		return nil
	case MethodUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"payment method is invalid",
		fmt.Errorf("%d is not a valid payment method", m),
	)
}

// String returns the human-readable name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// PaymentMethodFromString maps a method name back to its value.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, name := range getPaymentMethodStrings() {
		if name == s && method != MethodUnknown {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method is invalid",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// PaymentStatus represents the payment sub-state of an order. It is
// independent of, but correlated with, the order's lifecycle Status.
//
// State transitions:
//
//	PaymentPending ──> AwaitingVerification ──┬──> PaymentCompleted
//	       │                                  └──> PaymentRejected
//	       └──────────(direct mark-paid)─────────> PaymentCompleted
//
// PaymentProcessing, PaymentFailed and PaymentRefunded are part of the
// storage contract other collaborators depend on; the verification flow
// itself never produces them.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending means no payment intent has been declared yet.
	PaymentPending

	// PaymentProcessing means an external processor holds the payment.
	PaymentProcessing

	// AwaitingVerification means the customer declared a direct payment
	// and the chef has not yet verified it.
	AwaitingVerification

	// PaymentCompleted means the payment is settled. An order is paid
	// if and only if its payment status is PaymentCompleted.
	PaymentCompleted

	// PaymentRejected means the chef declined to verify the payment.
	PaymentRejected

	// PaymentFailed means an external processor rejected the payment.
	PaymentFailed

	// PaymentRefunded means a settled payment was returned.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:       "Unknown",
		PaymentPending:       "Pending",
		PaymentProcessing:    "Processing",
		AwaitingVerification: "AwaitingVerification",
		PaymentCompleted:     "Completed",
		PaymentRejected:      "Rejected",
		PaymentFailed:        "Failed",
		PaymentRefunded:      "Refunded",
	}
}

// Validate checks if the PaymentStatus value is valid.
func (p PaymentStatus) Validate() error {
	switch p {
	case PaymentPending, PaymentProcessing, AwaitingVerification,
		PaymentCompleted, PaymentRejected, PaymentFailed, PaymentRefunded:
		return nil
	case PaymentUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"payment status is invalid",
		fmt.Errorf("%d is not a valid payment status", p),
	)
}

// String returns the human-readable name of the payment status.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// SubmitForVerification transitions the payment status to AwaitingVerification.
//
// Valid transitions:
//   - PaymentPending -> AwaitingVerification
//
// Returns (AwaitingVerification, nil) on a valid transition, or
// (0, ConflictError) if a payment is already in flight or settled.
func (p PaymentStatus) SubmitForVerification() (PaymentStatus, error) {
	if p != PaymentPending {
		return 0, errs.NewConflictError(
			fmt.Sprintf("payment can only be submitted while pending, payment is %s", p),
		)
	}

	return AwaitingVerification, nil
}

// Verify resolves a payment awaiting chef verification.
//
// Valid transitions:
//   - AwaitingVerification -> PaymentCompleted (verified)
//   - AwaitingVerification -> PaymentRejected  (not verified)
//
// Returns the resolved status, or (0, ConflictError) if no verification is
// pending.
func (p PaymentStatus) Verify(verified bool) (PaymentStatus, error) {
	if p != AwaitingVerification {
		return 0, errs.NewConflictError(
			fmt.Sprintf("no payment awaiting verification, payment is %s", p),
		)
	}

	if verified {
		return PaymentCompleted, nil
	}
	return PaymentRejected, nil
}

// MarkCompleted transitions the payment status directly to PaymentCompleted.
// This is the legacy flow for already-trusted contexts; it skips verification
// but still refuses to re-settle a settled payment.
func (p PaymentStatus) MarkCompleted() (PaymentStatus, error) {
	if p == PaymentCompleted {
		return 0, errs.NewConflictError("payment is already completed")
	}

	return PaymentCompleted, nil
}
