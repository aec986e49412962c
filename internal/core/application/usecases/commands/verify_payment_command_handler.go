package commands

import (
	"context"

	"chefbook/internal/core/ports"
)

// VerifyPaymentCommandHandler applies a chef's verdict to a payment awaiting
// verification. A confirmed verdict settles the order; a rejected one sends
// the customer back to retry. Either way the outcome is pushed to the
// customer and to everyone watching the order.
type VerifyPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
}

// NewVerifyPaymentCommandHandler creates a handler for payment verification.
func NewVerifyPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
) VerifyPaymentCommandHandler {
	return VerifyPaymentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the verification verdict.
func (h *VerifyPaymentCommandHandler) Handle(ctx context.Context, cmd VerifyPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := aggregate.PaymentStatus()
	if err = aggregate.VerifyPaymentBy(cmd.ChefID(), cmd.Verified()); err != nil {
		return err
	}

	if err = repo.UpdateInPaymentStatus(ctx, aggregate, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	message := cmd.Note()
	if message == "" {
		message = "Payment verified by chef"
		if !cmd.Verified() {
			message = "Payment verification failed. Please try again or contact your chef."
		}
	}
	h.notifier.NotifyPaymentVerified(aggregate.CustomerID(), aggregate.ID(), cmd.Verified(), message)

	return nil
}
