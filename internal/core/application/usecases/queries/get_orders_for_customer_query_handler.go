package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetOrdersForCustomerQueryHandler lists every order a customer has placed,
// newest first. Terminal orders stay in the history; nothing is deleted.
type GetOrdersForCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersForCustomerQueryHandler creates a handler for customer history queries.
func NewGetOrdersForCustomerQueryHandler(db *gorm.DB) GetOrdersForCustomerQueryHandler {
	return GetOrdersForCustomerQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrdersForCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersForCustomerQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE customer_id = ?
		ORDER BY placed_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := time.Now().UTC()
	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows, now)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
