package queries

import (
	"context"
	"time"

	"chefbook/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler fetches a single order row and enforces that the
// caller is one of its two participants.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Participation is checked with the canonical
// identity comparison after the row is loaded.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	resp, err := scanOrderRow(rows, time.Now().UTC())
	if err != nil {
		return OrderResponse{}, err
	}

	caller := query.CallerID()
	if !caller.IsEqual(resp.CustomerID) && !caller.IsEqual(resp.ChefID) {
		return OrderResponse{}, errs.NewNotAuthorizedError(caller.String(), "view order")
	}

	return resp, nil
}
