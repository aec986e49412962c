package commands

import (
	"context"

	"chefbook/internal/core/ports"
)

// AcceptOrderCommandHandler moves a pending order to confirmed on behalf of
// its chef. The update is conditional on the order still being pending in
// storage, so a concurrent expiry or rejection wins cleanly and this handler
// reports a not-found conflict instead of overwriting it.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
	events     ports.OrderEventPublisher
}

// NewAcceptOrderCommandHandler creates a handler for chef acceptance.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
	events ports.OrderEventPublisher,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		events:     events,
	}
}

// Handle processes the acceptance command.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	previous := aggregate.Status()
	if err = aggregate.AcceptBy(cmd.ChefID()); err != nil {
		return err
	}

	if err = repo.UpdateInStatus(ctx, aggregate, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyOrderUpdate(aggregate.CustomerID(), aggregate)
	h.events.Publish(ports.OrderEvent{Kind: ports.EventOrderAccepted, Order: aggregate})

	return nil
}
