package queries

import (
	"context"
	"time"

	"chefbook/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPendingOrdersForChefQueryHandler lists a chef's undecided orders,
// oldest first, so the longest-waiting customer is at the top.
type GetPendingOrdersForChefQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersForChefQueryHandler creates a handler for chef pending-order queries.
func NewGetPendingOrdersForChefQueryHandler(db *gorm.DB) GetPendingOrdersForChefQueryHandler {
	return GetPendingOrdersForChefQueryHandler{db: db}
}

// Handle executes the query.
func (h GetPendingOrdersForChefQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersForChefQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE chef_id = ? AND status = ?
		ORDER BY placed_at
	`, query.ChefID().Bytes(), int(order.Pending)).Rows()
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
