// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return flat response models instead of aggregates.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderResponse is the read model for a single order. Enum fields carry their
// human-readable names; remaining_seconds is derived from the stored deadline
// at query time so clients can start their countdowns without clock math.
type OrderResponse struct {
	ID         kernel.UUID `json:"id"`
	CustomerID kernel.UUID `json:"customer_id"`
	ChefID     kernel.UUID `json:"chef_id"`

	Items      []ItemResponse `json:"items"`
	People     int            `json:"people"`
	Vegetarian bool           `json:"vegetarian"`
	Allergies  []string       `json:"allergies,omitempty"`

	Address      string `json:"address"`
	Instructions string `json:"instructions,omitempty"`

	SelectedDate time.Time `json:"selected_date"`
	SlotDay      string    `json:"slot_day"`
	SlotStart    string    `json:"slot_start"`
	SlotEnd      string    `json:"slot_end"`

	PlacedAt         time.Time `json:"placed_at"`
	TimerExpiry      time.Time `json:"timer_expiry"`
	RemainingSeconds int64     `json:"remaining_seconds"`

	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"`
	Paid          bool            `json:"paid"`
	Total         decimal.Decimal `json:"total"`
}

// ItemResponse is one selected dish inside an order response.
type ItemResponse struct {
	DishID    kernel.UUID     `json:"dish_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// orderColumns is the select list every order query shares. Keep it in sync
// with scanOrderRow.
const orderColumns = `
	id, customer_id, chef_id,
	items, people, vegetarian, allergies,
	address, instructions,
	selected_date, slot_day, slot_start, slot_end,
	placed_at, timer_expiry,
	status, payment_method, payment_status, paid, total
`

// scanOrderRow maps one result row onto an OrderResponse.
func scanOrderRow(rows *sql.Rows, now time.Time) (OrderResponse, error) {
	var (
		resp          OrderResponse
		id            uuid.UUID
		customerID    uuid.UUID
		chefID        uuid.UUID
		itemsJSON     []byte
		allergiesJSON []byte
		status        int
		paymentMethod int
		paymentStatus int
	)

	err := rows.Scan(
		&id, &customerID, &chefID,
		&itemsJSON, &resp.People, &resp.Vegetarian, &allergiesJSON,
		&resp.Address, &resp.Instructions,
		&resp.SelectedDate, &resp.SlotDay, &resp.SlotStart, &resp.SlotEnd,
		&resp.PlacedAt, &resp.TimerExpiry,
		&status, &paymentMethod, &paymentStatus, &resp.Paid, &resp.Total,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.ChefID, err = kernel.UUIDFromBytes(chefID[:]); err != nil {
		return OrderResponse{}, err
	}

	if len(itemsJSON) > 0 {
		if err = json.Unmarshal(itemsJSON, &resp.Items); err != nil {
			return OrderResponse{}, err
		}
	}
	if len(allergiesJSON) > 0 {
		if err = json.Unmarshal(allergiesJSON, &resp.Allergies); err != nil {
			return OrderResponse{}, err
		}
	}

	resp.Status = order.Status(status).String()
	resp.PaymentMethod = order.PaymentMethod(paymentMethod).String()
	resp.PaymentStatus = order.PaymentStatus(paymentStatus).String()

	if remaining := resp.TimerExpiry.Sub(now); remaining > 0 {
		resp.RemainingSeconds = int64(remaining.Seconds())
	}

	return resp, nil
}
