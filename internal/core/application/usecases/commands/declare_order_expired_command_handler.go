package commands

import (
	"context"
	"time"

	"chefbook/internal/core/ports"
)

// DeclareOrderExpiredCommandHandler expires a pending order at the customer's
// request once the server-side deadline has genuinely lapsed. A small clock
// tolerance absorbs skew between the client countdown and the stored deadline.
// If a chef accepted in the race window, the conditional update fails and the
// acceptance stands.
type DeclareOrderExpiredCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
	events     ports.OrderEventPublisher
}

// NewDeclareOrderExpiredCommandHandler creates a handler for customer-declared expiry.
func NewDeclareOrderExpiredCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
	events ports.OrderEventPublisher,
) DeclareOrderExpiredCommandHandler {
	return DeclareOrderExpiredCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		events:     events,
	}
}

// Handle processes the expiry declaration.
func (h *DeclareOrderExpiredCommandHandler) Handle(ctx context.Context, cmd DeclareOrderExpiredCommand) error {
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
	if err = aggregate.DeclareExpiredBy(cmd.CustomerID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.UpdateInStatus(ctx, aggregate, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyOrderUpdate(aggregate.ChefID(), aggregate)
	h.events.Publish(ports.OrderEvent{Kind: ports.EventOrderExpired, Order: aggregate})

	return nil
}
