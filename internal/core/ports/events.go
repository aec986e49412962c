package ports

import "chefbook/internal/core/domain/model/order"

// EventKind tags an order lifecycle event for the notification worker.
type EventKind string

const (
	// EventOrderPlaced fires after a new order committed.
	EventOrderPlaced EventKind = "order_placed"

	// EventOrderAccepted fires after a chef's acceptance committed.
	EventOrderAccepted EventKind = "order_accepted"

	// EventOrderRejected fires after a chef's rejection committed.
	EventOrderRejected EventKind = "order_rejected"

	// EventOrderCompleted fires after a session was marked done.
	EventOrderCompleted EventKind = "order_completed"

	// EventOrderExpired fires after the acceptance window lapsed,
	// whether declared by the customer or caught by the sweep.
	EventOrderExpired EventKind = "order_expired"
)

// OrderEvent is emitted after a state transition commits. Consumers run
// outside the transition's flow; whatever they do (email, metrics) can fail
// without unwinding the committed transition.
type OrderEvent struct {
	Kind  EventKind
	Order *order.Order
}

// OrderEventPublisher hands a committed event to the notification worker.
// Publishing is non-blocking best effort: if the worker's queue is full the
// event is dropped and logged, never retried into the state machine.
type OrderEventPublisher interface {
	Publish(event OrderEvent)
}
