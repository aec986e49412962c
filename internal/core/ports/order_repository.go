package ports

import (
	"context"
	"time"

	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// All mutating operations after creation are conditional updates matching both
// the order id and an expected prior state. A conditional update that matches
// zero rows reports ObjectNotFound; that result is the system's only
// concurrency control — losers of a race must not assume their side effects
// occurred. There are no application-level locks.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateInStatus persists the aggregate only if the stored row still has
	// the expected lifecycle status. Returns an ObjectNotFoundError when the
	// row is absent or a concurrent caller already moved it.
	UpdateInStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// UpdateInPaymentStatus persists the aggregate only if the stored row
	// still has the expected payment status. Same zero-row semantics as
	// UpdateInStatus.
	UpdateInPaymentStatus(ctx context.Context, aggregate *order.Order, expected order.PaymentStatus) error

	// GetAllPendingForChef retrieves the chef's orders still awaiting a
	// decision. Feeds the reconnect catch-up push and the chef dashboard.
	GetAllPendingForChef(ctx context.Context, chefID kernel.UUID) ([]*order.Order, error)

	// GetAllOverdueUnnotified retrieves Pending orders whose acceptance
	// window lapsed before now and whose expiration email has not been
	// requested yet. Feeds the expiry sweep.
	GetAllOverdueUnnotified(ctx context.Context, now time.Time) ([]*order.Order, error)
}
