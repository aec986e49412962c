package commands

import (
	"context"
	"time"

	"chefbook/internal/core/domain/model/order"
	"chefbook/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for placing a booking.
// Persists the new order, then pushes it to the chef's live channel and hands
// the placement event to the notification pipeline.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier, events)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("booking failed: %w", err)
//	}
//	// Order is now pending and the chef has five minutes to respond
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
	events     ports.OrderEventPublisher
}

// NewCreateOrderCommandHandler creates a handler for booking placement.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
	events ports.OrderEventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		events:     events,
	}
}

// Handle processes the booking placement command.
// The acceptance timer starts at the persistence instant, not at any
// client-side timestamp. Notifications go out only after the commit,
// so a rolled-back order is never announced.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.ChefID(),
		cmd.Items(),
		cmd.People(),
		cmd.Vegetarian(),
		cmd.Allergies(),
		cmd.Address(),
		cmd.Instructions(),
		cmd.SelectedDate(),
		cmd.TimeSlot(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyNewOrder(newOrder.ChefID(), newOrder)
	h.events.Publish(ports.OrderEvent{Kind: ports.EventOrderPlaced, Order: newOrder})

	return nil
}
