// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items and allergies are stored as JSON columns; everything the state
// machine filters on (status, payment status, timer expiry) is a plain
// indexed column so conditional updates and sweeps stay cheap.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	ChefID     uuid.UUID `gorm:"type:uuid;index"`

	Items     []ItemDTO `gorm:"serializer:json"`
	People    int
	Vegetarian bool
	Allergies []string `gorm:"serializer:json"`

	Address      string
	Instructions string

	SelectedDate time.Time
	Slot         SlotDTO `gorm:"embedded;embeddedPrefix:slot_"`

	PlacedAt    time.Time
	TimerExpiry time.Time `gorm:"index"`

	Status        int `gorm:"index"`
	PaymentMethod int
	PaymentStatus int
	Paid          bool

	ExpiredEmailSent bool
	Total            decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one selected dish inside the order's items JSON column.
type ItemDTO struct {
	DishID    uuid.UUID       `json:"dish_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SlotDTO represents the embedded service time slot within the order table.
type SlotDTO struct {
	Day   string
	Start string
	End   string
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			DishID:    item.DishID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		ChefID:           aggregate.ChefID().Bytes(),
		Items:            items,
		People:           aggregate.People(),
		Vegetarian:       aggregate.Vegetarian(),
		Allergies:        aggregate.Allergies(),
		Address:          aggregate.Address(),
		Instructions:     aggregate.Instructions(),
		SelectedDate:     aggregate.SelectedDate(),
		Slot: SlotDTO{
			Day:   aggregate.TimeSlot().Day(),
			Start: aggregate.TimeSlot().Start(),
			End:   aggregate.TimeSlot().End(),
		},
		PlacedAt:         aggregate.PlacedAt(),
		TimerExpiry:      aggregate.TimerExpiry(),
		Status:           int(aggregate.Status()),
		PaymentMethod:    int(aggregate.PaymentMethod()),
		PaymentStatus:    int(aggregate.PaymentStatus()),
		Paid:             aggregate.IsPaid(),
		ExpiredEmailSent: aggregate.ExpiredEmailSent(),
		Total:            aggregate.Total(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including both state machines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	chefID, err := kernel.UUIDFromBytes(dto.ChefID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		dishID, itemErr := kernel.UUIDFromBytes(itemDTO.DishID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewLineItem(dishID, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	slot, err := order.NewTimeSlot(dto.Slot.Day, dto.Slot.Start, dto.Slot.End)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID, chefID,
		items, dto.People, dto.Vegetarian, dto.Allergies,
		dto.Address, dto.Instructions,
		dto.SelectedDate, slot,
		dto.PlacedAt, dto.TimerExpiry,
		order.Status(dto.Status),
		order.PaymentMethod(dto.PaymentMethod),
		order.PaymentStatus(dto.PaymentStatus),
		dto.Paid, dto.ExpiredEmailSent, dto.Total,
	)
}
