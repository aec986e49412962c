package commands

import (
	"context"
	"errors"
	"log/slog"

	"chefbook/internal/core/domain/model/order"
	"chefbook/internal/core/ports"
	"chefbook/internal/pkg/errs"
)

// ExpireOverdueOrdersCommandHandler expires every pending order whose
// acceptance window lapsed, and flags each one so its expiration email goes
// out exactly once. Orders that a chef or customer moved mid-sweep are
// skipped; they are not this pass's problem anymore.
type ExpireOverdueOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
	events     ports.OrderEventPublisher
}

// NewExpireOverdueOrdersCommandHandler creates a handler for the expiry sweep.
func NewExpireOverdueOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
	events ports.OrderEventPublisher,
) ExpireOverdueOrdersCommandHandler {
	return ExpireOverdueOrdersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		events:     events,
	}
}

// Handle runs one sweep pass.
// Each overdue order is expired with a conditional update on its pending
// status. Notifications and the expiration-email event fire only after the
// whole pass commits.
func (h *ExpireOverdueOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireOverdueOrdersCommand) error {
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
	overdue, err := repo.GetAllOverdueUnnotified(ctx, cmd.Now())
	if err != nil {
		return err
	}

	expired := make([]*order.Order, 0, len(overdue))
	for _, aggregate := range overdue {
		previous := aggregate.Status()
		if err = aggregate.ExpireBySweep(cmd.Now()); err != nil {
			slog.Warn("sweep skipped order",
				"order_id", aggregate.ID().String(), "error", err)
			continue
		}

		if err = repo.UpdateInStatus(ctx, aggregate, previous); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				// Lost the race to a chef decision or customer declaration.
				slog.Info("sweep lost conditional update",
					"order_id", aggregate.ID().String())
				continue
			}
			return err
		}

		expired = append(expired, aggregate)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, aggregate := range expired {
		h.notifier.NotifyOrderUpdate(aggregate.CustomerID(), aggregate)
		h.notifier.NotifyOrderUpdate(aggregate.ChefID(), aggregate)
		h.events.Publish(ports.OrderEvent{Kind: ports.EventOrderExpired, Order: aggregate})
	}

	return nil
}
