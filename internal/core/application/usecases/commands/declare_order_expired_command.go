package commands

import (
	"errors"

	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/pkg/guard"
)

var ErrDeclareOrderExpiredCommandIsNotConstructed = errors.New(
	"DeclareOrderExpiredCommand must be created via NewDeclareOrderExpiredCommand constructor",
)

// DeclareOrderExpiredCommand is the customer-side report that the acceptance
// window ran out. The server re-checks the stored deadline; the client
// countdown is advisory only.
type DeclareOrderExpiredCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeclareOrderExpiredCommand creates a command for a customer to declare
// their pending order expired.
func NewDeclareOrderExpiredCommand(orderID, customerID kernel.UUID) (DeclareOrderExpiredCommand, error) {
	cmd := DeclareOrderExpiredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return DeclareOrderExpiredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeclareOrderExpiredCommand) Validate() error {
	return c.guard.Validate(ErrDeclareOrderExpiredCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being declared expired.
func (c DeclareOrderExpiredCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identity of the declaring customer.
func (c DeclareOrderExpiredCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *DeclareOrderExpiredCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DeclareOrderExpiredCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
