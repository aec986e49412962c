package commands

import (
	"errors"

	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/core/domain/model/order"
	"chefbook/internal/pkg/guard"
)

var ErrSubmitPaymentCommandIsNotConstructed = errors.New(
	"SubmitPaymentCommand must be created via NewSubmitPaymentCommand constructor",
)

// SubmitPaymentCommand declares a customer's intent to pay the chef directly
// by cash, QR code, or UPI. The chef then verifies the payment out of band.
type SubmitPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	method     order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewSubmitPaymentCommand creates a command to submit a direct payment.
func NewSubmitPaymentCommand(
	orderID, customerID kernel.UUID,
	method order.PaymentMethod,
) (SubmitPaymentCommand, error) {
	cmd := SubmitPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setMethod(method),
	); err != nil {
		return SubmitPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitPaymentCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid.
func (c SubmitPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identity of the paying customer.
func (c SubmitPaymentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Method returns the declared payment method.
func (c SubmitPaymentCommand) Method() order.PaymentMethod {
	return c.method
}

func (c *SubmitPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitPaymentCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SubmitPaymentCommand) setMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
