package commands

import (
	"context"

	"chefbook/internal/core/ports"
)

// RejectOrderCommandHandler moves a pending order to rejected on behalf of
// its chef. Rejection is terminal and keeps the order visible in history.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
	events     ports.OrderEventPublisher
}

// NewRejectOrderCommandHandler creates a handler for chef rejection.
func NewRejectOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
	events ports.OrderEventPublisher,
) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		events:     events,
	}
}

// Handle processes the rejection command.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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
	if err = aggregate.RejectBy(cmd.ChefID()); err != nil {
		return err
	}

	if err = repo.UpdateInStatus(ctx, aggregate, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyOrderUpdate(aggregate.CustomerID(), aggregate)
	h.events.Publish(ports.OrderEvent{Kind: ports.EventOrderRejected, Order: aggregate})

	return nil
}
