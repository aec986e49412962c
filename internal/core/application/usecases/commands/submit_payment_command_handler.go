package commands

import (
	"context"

	"chefbook/internal/core/ports"
)

// SubmitPaymentCommandHandler records a customer's direct-payment intent and
// asks the chef to verify it. The update is conditional on the payment still
// awaiting its first submission, so double-submits surface as conflicts.
type SubmitPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
}

// NewSubmitPaymentCommandHandler creates a handler for payment submission.
func NewSubmitPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
) SubmitPaymentCommandHandler {
	return SubmitPaymentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the payment submission.
func (h *SubmitPaymentCommandHandler) Handle(ctx context.Context, cmd SubmitPaymentCommand) error {
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
	if err = aggregate.SubmitPaymentBy(cmd.CustomerID(), cmd.Method()); err != nil {
		return err
	}

	if err = repo.UpdateInPaymentStatus(ctx, aggregate, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyPaymentRequested(aggregate.ChefID(), aggregate)

	return nil
}
