package order

import (
	"errors"
	"time"

	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

const (
	// AcceptanceWindow is the fixed period after creation during which the
	// chef may accept or reject before the order becomes eligible for expiry.
	AcceptanceWindow = 5 * time.Minute

	// DeclareExpiryTolerance is how far ahead of the stored expiry a
	// customer's explicit expiry declaration is still honored. It absorbs
	// clock drift between the client's countdown and the server clock.
	DeclareExpiryTolerance = 2 * time.Second

	// maxPeoplePerBooking caps a single session's headcount.
	maxPeoplePerBooking = 100
)

// Order represents one chef-booking request in the system. It is the aggregate
// root that manages the booking lifecycle from placement through the chef's
// accept/reject decision to completion or expiry, together with the correlated
// payment sub-state.
//
// Order follows these invariants:
//   - paid is true if and only if paymentStatus is PaymentCompleted
//   - status moves only along the transitions defined on Status
//   - timerExpiry is placedAt + AcceptanceWindow, set once and never mutated
//   - an order may be expired only while Pending
//   - the monetary total is derived from the line items at creation and
//     immutable afterward
//
// The struct uses private fields to ensure encapsulation; every mutation goes
// through a role-scoped method that enforces both the caller's identity and
// the state machine. Orders are never deleted; terminal statuses end their life.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	chefID     kernel.UUID

	items        []LineItem
	people       int
	vegetarian   bool
	allergies    []string
	address      string
	instructions string

	selectedDate time.Time
	timeSlot     TimeSlot
	placedAt     time.Time
	timerExpiry  time.Time

	status        Status
	paymentMethod PaymentMethod
	paymentStatus PaymentStatus
	paid          bool

	expiredEmailSent bool
	total            decimal.Decimal

	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to place
// a booking, ensuring all business invariants hold from the start.
//
// The order starts Pending with payment Pending and unpaid. placedAt is the
// creation instant supplied by the caller; the expiry timer is derived from it
// exactly once. selectedDate must be today or later relative to placedAt, the
// time slot must be resolvable, and at least one valid line item is required.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	chefID kernel.UUID,
	items []LineItem,
	people int,
	vegetarian bool,
	allergies []string,
	address string,
	instructions string,
	selectedDate time.Time,
	timeSlot TimeSlot,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		vegetarian:    vegetarian,
		allergies:     allergies,
		instructions:  instructions,
		status:        Pending,
		paymentStatus: PaymentPending,
		placedAt:      placedAt,
		timerExpiry:   placedAt.Add(AcceptanceWindow),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(customerID, chefID),
		o.setItems(items),
		o.setPeople(people),
		o.setAddress(address),
		o.setSchedule(selectedDate, timeSlot, placedAt),
	); err != nil {
		return nil, err
	}

	o.total = totalOf(o.items)
	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-running the
// creation guards (the stored order may legitimately reference a past date).
// It still validates identities, enum values, and the paid/payment-status
// invariant, so corrupt rows surface as errors instead of invalid aggregates.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	chefID kernel.UUID,
	items []LineItem,
	people int,
	vegetarian bool,
	allergies []string,
	address string,
	instructions string,
	selectedDate time.Time,
	timeSlot TimeSlot,
	placedAt time.Time,
	timerExpiry time.Time,
	status Status,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	paid bool,
	expiredEmailSent bool,
	total decimal.Decimal,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		chefID.Validate(),
		status.Validate(),
		paymentStatus.Validate(),
		timeSlot.Validate(),
	); err != nil {
		return nil, err
	}

	if paid != (paymentStatus == PaymentCompleted) {
		return nil, errs.NewValueIsInvalidError("paid flag does not match payment status")
	}

	return &Order{
		id:               id,
		customerID:       customerID,
		chefID:           chefID,
		items:            items,
		people:           people,
		vegetarian:       vegetarian,
		allergies:        allergies,
		address:          address,
		instructions:     instructions,
		selectedDate:     selectedDate,
		timeSlot:         timeSlot,
		placedAt:         placedAt,
		timerExpiry:      timerExpiry,
		status:           status,
		paymentMethod:    paymentMethod,
		paymentStatus:    paymentStatus,
		paid:             paid,
		expiredEmailSent: expiredEmailSent,
		total:            total,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. Call it when receiving orders across package
// boundaries to reject zero-value structs.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the booking customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// ChefID returns the booked chef's identifier.
func (o *Order) ChefID() kernel.UUID {
	return o.chefID
}

// Items returns the ordered line items.
func (o *Order) Items() []LineItem {
	return o.items
}

// People returns the number of people the session is booked for.
func (o *Order) People() int {
	return o.people
}

// Vegetarian reports whether the customer asked for a vegetarian menu.
func (o *Order) Vegetarian() bool {
	return o.vegetarian
}

// Allergies returns the customer's declared allergies.
func (o *Order) Allergies() []string {
	return o.allergies
}

// Address returns the delivery address for the session.
func (o *Order) Address() string {
	return o.address
}

// Instructions returns the customer's special instructions.
func (o *Order) Instructions() string {
	return o.instructions
}

// SelectedDate returns the booked session date.
func (o *Order) SelectedDate() time.Time {
	return o.selectedDate
}

// TimeSlot returns the booked session window.
func (o *Order) TimeSlot() TimeSlot {
	return o.timeSlot
}

// PlacedAt returns the creation time of the order.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// TimerExpiry returns the end of the chef's acceptance window.
// It is derived from the stored creation time, never from a live timer, so a
// process restart neither loses nor duplicates expiry decisions.
func (o *Order) TimerExpiry() time.Time {
	return o.timerExpiry
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns the recorded payment method.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the current payment sub-state of the order.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// IsPaid reports whether the order is settled.
// Always equivalent to PaymentStatus() == PaymentCompleted.
func (o *Order) IsPaid() bool {
	return o.paid
}

// ExpiredEmailSent reports whether the expiration email for this order has
// already been requested. It makes the sweep's email step idempotent across
// passes and crashes.
func (o *Order) ExpiredEmailSent() bool {
	return o.expiredEmailSent
}

// Total returns the monetary total derived from the line items at creation.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// IsParticipant reports whether the given identity is the order's customer or
// chef. This is the single "who may view this order" check; identities are
// compared canonically via UUID equality.
func (o *Order) IsParticipant(id kernel.UUID) bool {
	return o.customerID.IsEqual(id) || o.chefID.IsEqual(id)
}

// AcceptBy confirms the order on behalf of its chef.
//
// Business rules:
//   - the caller must be the order's chef
//   - the order must still be Pending
//
// Returns a NotAuthorizedError or ConflictError when a rule fails; the order
// is unchanged in that case.
func (o *Order) AcceptBy(chefID kernel.UUID) error {
	if err := o.ensureChef(chefID, "accept order"); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// RejectBy declines the order on behalf of its chef.
// Same rules as AcceptBy; Rejected is terminal.
func (o *Order) RejectBy(chefID kernel.UUID) error {
	if err := o.ensureChef(chefID, "reject order"); err != nil {
		return err
	}

	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// CompleteBy marks a confirmed session as done on behalf of its chef.
// The order must be Confirmed; Completed is terminal.
func (o *Order) CompleteBy(chefID kernel.UUID) error {
	if err := o.ensureChef(chefID, "complete order"); err != nil {
		return err
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// DeclareExpiredBy expires the order on behalf of its customer, invoked when
// the client's own countdown reaches zero.
//
// Business rules:
//   - the caller must be the order's customer
//   - now must be at or past timerExpiry, less DeclareExpiryTolerance
//   - the order must still be Pending
//
// An early call returns a ConflictError carrying the remaining window so the
// client can resynchronize its countdown. A call that loses to a concurrent
// chef action returns a ConflictError; the caller should re-fetch the order
// rather than treat that as a hard failure.
func (o *Order) DeclareExpiredBy(customerID kernel.UUID, now time.Time) error {
	if !o.customerID.IsEqual(customerID) {
		return errs.NewNotAuthorizedError(customerID.String(), "declare order expired")
	}

	if now.Before(o.timerExpiry.Add(-DeclareExpiryTolerance)) {
		return errs.NewConflictErrorWithRemaining(
			"acceptance window has not lapsed",
			o.timerExpiry.Sub(now),
		)
	}

	newStatus, err := o.status.Expire()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ExpireBySweep expires the order from the periodic sweep.
//
// The sweep applies no tolerance: the stored timerExpiry must have strictly
// passed. It also flips the expiredEmailSent guard so the expiration email is
// requested at most once across sweep passes and restarts.
func (o *Order) ExpireBySweep(now time.Time) error {
	if now.Before(o.timerExpiry) {
		return errs.NewConflictErrorWithRemaining(
			"acceptance window has not lapsed",
			o.timerExpiry.Sub(now),
		)
	}

	newStatus, err := o.status.Expire()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.expiredEmailSent = true
	return nil
}

// SubmitPaymentBy declares the customer's intent to pay directly.
//
// Business rules:
//   - the caller must be the order's customer
//   - the order must not already be paid
//   - no payment may already be awaiting verification
//
// On success the payment moves to AwaitingVerification and the chosen method
// is recorded for the chef to check against.
func (o *Order) SubmitPaymentBy(customerID kernel.UUID, method PaymentMethod) error {
	if !o.customerID.IsEqual(customerID) {
		return errs.NewNotAuthorizedError(customerID.String(), "submit payment")
	}

	if err := method.Validate(); err != nil {
		return err
	}

	if o.paid {
		return errs.NewConflictError("order is already paid")
	}

	newStatus, err := o.paymentStatus.SubmitForVerification()
	if err != nil {
		return err
	}

	o.setPaymentStatus(newStatus)
	o.paymentMethod = method
	return nil
}

// VerifyPaymentBy resolves a pending payment verification on behalf of the
// order's chef. verified=true settles the payment; verified=false rejects it
// and the order stays unpaid.
func (o *Order) VerifyPaymentBy(chefID kernel.UUID, verified bool) error {
	if err := o.ensureChef(chefID, "verify payment"); err != nil {
		return err
	}

	newStatus, err := o.paymentStatus.Verify(verified)
	if err != nil {
		return err
	}

	o.setPaymentStatus(newStatus)
	return nil
}

// MarkPaid settles the payment directly without chef verification.
// This is the legacy flow for already-trusted contexts.
func (o *Order) MarkPaid() error {
	newStatus, err := o.paymentStatus.MarkCompleted()
	if err != nil {
		return err
	}

	o.setPaymentStatus(newStatus)
	return nil
}

// setPaymentStatus is the single write path for the payment sub-state; it
// keeps the paid flag equivalent to PaymentCompleted.
func (o *Order) setPaymentStatus(status PaymentStatus) {
	o.paymentStatus = status
	o.paid = status == PaymentCompleted
}

func (o *Order) ensureChef(chefID kernel.UUID, action string) error {
	if !o.chefID.IsEqual(chefID) {
		return errs.NewNotAuthorizedError(chefID.String(), action)
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParties(customerID, chefID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if err := chefID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	o.chefID = chefID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("line items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setPeople(people int) error {
	if people < 1 || people > maxPeoplePerBooking {
		return errs.NewValueIsOutOfRangeError("number of people", people, 1, maxPeoplePerBooking)
	}
	o.people = people
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.address = address
	return nil
}

func (o *Order) setSchedule(selectedDate time.Time, timeSlot TimeSlot, placedAt time.Time) error {
	if err := timeSlot.Validate(); err != nil {
		return err
	}

	today := time.Date(placedAt.Year(), placedAt.Month(), placedAt.Day(), 0, 0, 0, 0, placedAt.Location())
	if selectedDate.Before(today) {
		return errs.NewValueIsInvalidError("selected date is in the past")
	}

	o.selectedDate = selectedDate
	o.timeSlot = timeSlot
	return nil
}

func totalOf(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
