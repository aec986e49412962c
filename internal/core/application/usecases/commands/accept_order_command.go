package commands

import (
	"errors"

	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a chef's decision to take a pending booking.
// Carries the order to accept and the identity of the chef making the call,
// which is checked against the order's assigned chef.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	chefID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for a chef to accept an order.
func NewAcceptOrderCommand(orderID, chefID kernel.UUID) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setChefID(chefID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being accepted.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ChefID returns the identity of the accepting chef.
func (c AcceptOrderCommand) ChefID() kernel.UUID {
	return c.chefID
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setChefID(chefID kernel.UUID) error {
	if err := chefID.Validate(); err != nil {
		return err
	}

	c.chefID = chefID
	return nil
}
