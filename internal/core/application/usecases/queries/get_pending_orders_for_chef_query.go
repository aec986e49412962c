package queries

import (
	"errors"

	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/pkg/guard"
)

var ErrGetPendingOrdersForChefQueryIsNotConstructed = errors.New(
	"GetPendingOrdersForChefQuery must be created via NewGetPendingOrdersForChefQuery constructor",
)

// GetPendingOrdersForChefQuery retrieves the orders still awaiting the chef's
// decision. Feeds the chef dashboard and the reconnect catch-up push.
type GetPendingOrdersForChefQuery struct {
	chefID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPendingOrdersForChefQuery creates a query for a chef's pending orders.
func NewGetPendingOrdersForChefQuery(chefID kernel.UUID) (GetPendingOrdersForChefQuery, error) {
	if err := chefID.Validate(); err != nil {
		return GetPendingOrdersForChefQuery{}, err
	}

	return GetPendingOrdersForChefQuery{
		chefID: chefID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersForChefQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersForChefQueryIsNotConstructed)
}

// ChefID returns the chef whose pending orders are requested.
func (q GetPendingOrdersForChefQuery) ChefID() kernel.UUID {
	return q.chefID
}
