package commands

import (
	"context"

	"chefbook/internal/core/ports"
)

// MarkOrderPaidCommandHandler settles an order's payment directly. Marking an
// already settled order reports a conflict instead of silently succeeding.
type MarkOrderPaidCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
}

// NewMarkOrderPaidCommandHandler creates a handler for direct settlement.
func NewMarkOrderPaidCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
) MarkOrderPaidCommandHandler {
	return MarkOrderPaidCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the settlement command.
func (h *MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) error {
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
	if err = aggregate.MarkPaid(); err != nil {
		return err
	}

	if err = repo.UpdateInPaymentStatus(ctx, aggregate, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyOrderUpdate(aggregate.CustomerID(), aggregate)
	h.notifier.NotifyOrderUpdate(aggregate.ChefID(), aggregate)

	return nil
}
