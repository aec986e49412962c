package commands

import (
	"errors"

	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand represents a chef's decision to decline a pending booking.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	chefID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command for a chef to reject an order.
func NewRejectOrderCommand(orderID, chefID kernel.UUID) (RejectOrderCommand, error) {
	cmd := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setChefID(chefID),
	); err != nil {
		return RejectOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being rejected.
func (c RejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ChefID returns the identity of the rejecting chef.
func (c RejectOrderCommand) ChefID() kernel.UUID {
	return c.chefID
}

func (c *RejectOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectOrderCommand) setChefID(chefID kernel.UUID) error {
	if err := chefID.Validate(); err != nil {
		return err
	}

	c.chefID = chefID
	return nil
}
