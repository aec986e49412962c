package queries

import (
	"errors"

	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/pkg/guard"
)

var ErrGetOrdersForCustomerQueryIsNotConstructed = errors.New(
	"GetOrdersForCustomerQuery must be created via NewGetOrdersForCustomerQuery constructor",
)

// GetOrdersForCustomerQuery retrieves a customer's booking history across all
// statuses, newest first.
type GetOrdersForCustomerQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersForCustomerQuery creates a query for a customer's order history.
func NewGetOrdersForCustomerQuery(customerID kernel.UUID) (GetOrdersForCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetOrdersForCustomerQuery{}, err
	}

	return GetOrdersForCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersForCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersForCustomerQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are requested.
func (q GetOrdersForCustomerQuery) CustomerID() kernel.UUID {
	return q.customerID
}
