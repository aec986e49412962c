package commands

import (
	"errors"

	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/pkg/guard"
)

var ErrVerifyPaymentCommandIsNotConstructed = errors.New(
	"VerifyPaymentCommand must be created via NewVerifyPaymentCommand constructor",
)

// VerifyPaymentCommand carries a chef's verdict on a submitted direct payment:
// either the money arrived or it did not. An optional note from the chef is
// relayed to the customer in place of the stock outcome message.
type VerifyPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	chefID   kernel.UUID
	verified bool
	note     string

	guard guard.ConstructorGuard
}

// NewVerifyPaymentCommand creates a command for a chef to confirm or reject
// a submitted payment.
func NewVerifyPaymentCommand(orderID, chefID kernel.UUID, verified bool, note string) (VerifyPaymentCommand, error) {
	cmd := VerifyPaymentCommand{
		verified: verified,
		note:     note,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setChefID(chefID),
	); err != nil {
		return VerifyPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyPaymentCommand) Validate() error {
	return c.guard.Validate(ErrVerifyPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose payment is being verified.
func (c VerifyPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ChefID returns the identity of the verifying chef.
func (c VerifyPaymentCommand) ChefID() kernel.UUID {
	return c.chefID
}

// Verified reports whether the chef confirmed receiving the payment.
func (c VerifyPaymentCommand) Verified() bool {
	return c.verified
}

// Note returns the chef's optional note to the customer; empty when none.
func (c VerifyPaymentCommand) Note() string {
	return c.note
}

func (c *VerifyPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *VerifyPaymentCommand) setChefID(chefID kernel.UUID) error {
	if err := chefID.Validate(); err != nil {
		return err
	}

	c.chefID = chefID
	return nil
}
