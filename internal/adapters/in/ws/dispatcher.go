package ws

import (
	"log/slog"
	"time"

	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/core/domain/model/order"
)

// Dispatcher routes order pushes to connected clients through the registry.
// Every delivery is best effort: a recipient without a connection, or with a
// saturated channel, loses the message and the loss is only logged.
type Dispatcher struct {
	registry *Registry
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *Registry, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{registry: registry, logger: logger}
}

// NotifyNewOrder pushes a freshly placed order to its chef.
func (d *Dispatcher) NotifyNewOrder(chefID kernel.UUID, aggregate *order.Order) {
	d.sendToIdentity(chefID, NewOrderMessage(TypeNewOrder, aggregate, time.Now().UTC()))
}

// NotifyOrderUpdate pushes a status transition to the given party.
func (d *Dispatcher) NotifyOrderUpdate(recipientID kernel.UUID, aggregate *order.Order) {
	d.sendToIdentity(recipientID, NewOrderMessage(TypeOrderUpdate, aggregate, time.Now().UTC()))
}

// NotifyPaymentRequested pushes a payment-intent summary to the chef.
func (d *Dispatcher) NotifyPaymentRequested(chefID kernel.UUID, aggregate *order.Order) {
	d.sendToIdentity(chefID, NewOrderMessage(TypePaymentNotification, aggregate, time.Now().UTC()))
}

// NotifyPaymentVerified pushes the verdict to the customer's identity channel
// and to every client subscribed to the order.
func (d *Dispatcher) NotifyPaymentVerified(customerID, orderID kernel.UUID, verified bool, message string) {
	payload := NewPaymentVerificationMessage(orderID, verified, message)

	data, ok := marshalOrDrop(payload)
	if !ok {
		return
	}

	delivered := make(map[*Client]struct{})
	if client, bound := d.registry.Lookup(customerID); bound {
		d.deliver(client, data, customerID.String())
		delivered[client] = struct{}{}
	}

	for _, client := range d.registry.Subscribers(orderID) {
		if _, done := delivered[client]; done {
			continue
		}
		d.deliver(client, data, "subscriber of "+orderID.String())
	}
}

func (d *Dispatcher) sendToIdentity(identity kernel.UUID, message any) {
	client, bound := d.registry.Lookup(identity)
	if !bound {
		return
	}

	data, ok := marshalOrDrop(message)
	if !ok {
		return
	}

	d.deliver(client, data, identity.String())
}

func (d *Dispatcher) deliver(client *Client, data []byte, recipient string) {
	if !client.enqueue(data) {
		d.logger.Warn("dropped push, channel closed or full", "recipient", recipient)
	}
}
