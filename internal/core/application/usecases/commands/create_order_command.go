package commands

import (
	"errors"
	"time"

	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/core/domain/model/order"
	"chefbook/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired  = errors.New("at least one line item is required")
	ErrAddressIsRequired = errors.New("address is required")
)

// CreateOrderCommand represents a customer's request to book a chef.
// Carries everything the booking needs: parties, menu selection, headcount,
// dietary notes, location, and the requested date and time slot.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), customerID, chefID,
//	    items, 4, false, nil,
//	    "12 Rose Lane", "ring the bell twice",
//	    selectedDate, slot,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	chefID     kernel.UUID

	items        []order.LineItem
	people       int
	vegetarian   bool
	allergies    []string
	address      string
	instructions string

	selectedDate time.Time
	timeSlot     order.TimeSlot

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new booking.
// Validates identities, the menu selection, the address, and the time slot;
// headcount and date rules are enforced by the order aggregate itself.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	chefID kernel.UUID,
	items []order.LineItem,
	people int,
	vegetarian bool,
	allergies []string,
	address string,
	instructions string,
	selectedDate time.Time,
	timeSlot order.TimeSlot,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		people:       people,
		vegetarian:   vegetarian,
		allergies:    allergies,
		instructions: instructions,
		selectedDate: selectedDate,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setParties(customerID, chefID),
		cmd.setItems(items),
		cmd.setAddress(address),
		cmd.setTimeSlot(timeSlot),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identity of the booking customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ChefID returns the identity of the chef being booked.
func (c CreateOrderCommand) ChefID() kernel.UUID {
	return c.chefID
}

// Items returns the selected dishes with quantities and prices.
func (c CreateOrderCommand) Items() []order.LineItem {
	return c.items
}

// People returns the number of diners.
func (c CreateOrderCommand) People() int {
	return c.people
}

// Vegetarian reports whether the booking is vegetarian only.
func (c CreateOrderCommand) Vegetarian() bool {
	return c.vegetarian
}

// Allergies returns the customer's declared allergies.
func (c CreateOrderCommand) Allergies() []string {
	return c.allergies
}

// Address returns the service address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// Instructions returns free-form notes for the chef.
func (c CreateOrderCommand) Instructions() string {
	return c.instructions
}

// SelectedDate returns the requested booking date.
func (c CreateOrderCommand) SelectedDate() time.Time {
	return c.selectedDate
}

// TimeSlot returns the requested time slot.
func (c CreateOrderCommand) TimeSlot() order.TimeSlot {
	return c.timeSlot
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setParties(customerID, chefID kernel.UUID) error {
	if err := errors.Join(customerID.Validate(), chefID.Validate()); err != nil {
		return err
	}

	c.customerID = customerID
	c.chefID = chefID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.LineItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setTimeSlot(timeSlot order.TimeSlot) error {
	if err := timeSlot.Validate(); err != nil {
		return err
	}

	c.timeSlot = timeSlot
	return nil
}
