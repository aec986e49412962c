package ports

import (
	"context"

	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/core/domain/model/order"
)

// OrderNotifier pushes order state to currently connected parties. Delivery is
// best effort: a recipient without an open channel is silently skipped, and no
// implementation may propagate a send failure back into the calling
// business-logic flow.
type OrderNotifier interface {
	// NotifyNewOrder pushes a freshly placed order to its chef.
	NotifyNewOrder(chefID kernel.UUID, aggregate *order.Order)

	// NotifyOrderUpdate pushes a status transition to the given party.
	NotifyOrderUpdate(recipientID kernel.UUID, aggregate *order.Order)

	// NotifyPaymentRequested pushes a payment-intent summary to the chef.
	NotifyPaymentRequested(chefID kernel.UUID, aggregate *order.Order)

	// NotifyPaymentVerified pushes the verification outcome to the
	// customer's identity channel and to every channel subscribed to the
	// order id.
	NotifyPaymentVerified(customerID kernel.UUID, orderID kernel.UUID, verified bool, message string)
}

// EmailSender delivers one rendered email. Failures are reported to the
// caller but are never fatal to the state transition that requested the send.
type EmailSender interface {
	Send(ctx context.Context, recipient, subject, htmlBody string) error
}
