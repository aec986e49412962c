package order

import (
	"errors"
	"fmt"

	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/pkg/errs"
	"chefbook/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem factory method.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one ordered dish with its quantity and unit price. It is an
// immutable value object; the order total is derived from its line items at
// creation time and never recomputed afterward.
type LineItem struct { //nolint:recvcheck //setters used only during construction
	dishID    kernel.UUID
	quantity  int
	unitPrice decimal.Decimal

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item with validation.
// Quantity must be at least 1 and the unit price must not be negative.
func NewLineItem(dishID kernel.UUID, quantity int, unitPrice decimal.Decimal) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setDishID(dishID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// DishID returns the ordered dish's identifier.
func (i LineItem) DishID() kernel.UUID {
	return i.dishID
}

// Quantity returns how many servings of the dish were ordered.
func (i LineItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single serving.
func (i LineItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Subtotal returns quantity times unit price.
func (i LineItem) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *LineItem) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}
	i.dishID = dishID
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not at least 1", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit price is invalid",
			fmt.Errorf("%s is negative", unitPrice),
		)
	}
	i.unitPrice = unitPrice
	return nil
}
