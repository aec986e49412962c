// Package order provides domain entities and business logic for booking-order
// management in the chef-booking system. It implements the Order aggregate
// root with lifecycle management, a correlated payment sub-state, and the
// acceptance-window expiry mechanism.
//
// The package includes:
//   - Order: The aggregate root that manages identity, contents, lifecycle, and payment
//   - Status: A state machine enforcing Pending -> Confirmed/Rejected/Expired -> Completed
//   - PaymentStatus / PaymentMethod: The payment sub-state machine and method enum
//   - LineItem / TimeSlot: Immutable value objects for order contents and scheduling
//
// Key business rules:
//   - Every mutation is role-scoped: chefs accept/reject/complete/verify,
//     customers create, declare expiry, and submit payment
//   - The chef's acceptance window is fixed at creation; expiry is re-derived
//     from the stored deadline on every check
//   - An order is paid if and only if its payment status is Completed
//   - Terminal statuses end an order's life; orders are never deleted
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
