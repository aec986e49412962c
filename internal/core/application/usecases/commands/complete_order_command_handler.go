package commands

import (
	"context"

	"chefbook/internal/core/ports"
)

// CompleteOrderCommandHandler moves a confirmed order to completed on behalf
// of its chef. Completion does not touch payment state; a completed order can
// still be awaiting payment or verification.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
	events     ports.OrderEventPublisher
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
	events ports.OrderEventPublisher,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		events:     events,
	}
}

// Handle processes the completion command.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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
	if err = aggregate.CompleteBy(cmd.ChefID()); err != nil {
		return err
	}

	if err = repo.UpdateInStatus(ctx, aggregate, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyOrderUpdate(aggregate.CustomerID(), aggregate)
	h.events.Publish(ports.OrderEvent{Kind: ports.EventOrderCompleted, Order: aggregate})

	return nil
}
