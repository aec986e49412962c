// Package ws is the realtime push adapter. A connected client is anonymous
// until it authenticates with a JWT; after that the registry routes order
// pushes to it by identity and by order subscription. Delivery is best
// effort: an absent or saturated channel drops the message, never the flow
// that produced it.
package ws

import (
	"encoding/json"
	"time"

	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// MessageType discriminates the envelopes exchanged over a connection.
type MessageType string

const (
	// TypeAuth binds a connection to an identity. Client to server.
	TypeAuth MessageType = "AUTH"

	// TypeSubscribeOrder adds the connection to an order's watcher set.
	TypeSubscribeOrder MessageType = "SUBSCRIBE_ORDER"

	// TypeNewOrder announces a freshly placed order to its chef.
	TypeNewOrder MessageType = "NEW_ORDER"

	// TypeOrderUpdate announces a lifecycle transition to a party.
	TypeOrderUpdate MessageType = "ORDER_UPDATE"

	// TypePaymentNotification announces a payment intent to the chef.
	TypePaymentNotification MessageType = "PAYMENT_NOTIFICATION"

	// TypePaymentVerification announces a verification verdict.
	TypePaymentVerification MessageType = "PAYMENT_VERIFICATION"

	// TypeChatTyping is relayed unchanged between the two parties.
	TypeChatTyping MessageType = "CHAT_TYPING"

	// TypeMarkRead is relayed unchanged between the two parties.
	TypeMarkRead MessageType = "MARK_READ"

	// TypeJoinGlobalChat is acknowledged only.
	TypeJoinGlobalChat MessageType = "JOIN_GLOBAL_CHAT"
)

// Envelope is the inbound frame. Only the fields matching its Type are set;
// unknown fields are kept raw so chat frames can be relayed verbatim.
type Envelope struct {
	Type        MessageType `json:"type"`
	Token       string      `json:"token,omitempty"`
	OrderID     string      `json:"order_id,omitempty"`
	RecipientID string      `json:"recipient_id,omitempty"`
}

// OrderPayload is the order snapshot pushed with order-carrying messages.
type OrderPayload struct {
	ID               kernel.UUID     `json:"id"`
	CustomerID       kernel.UUID     `json:"customer_id"`
	ChefID           kernel.UUID     `json:"chef_id"`
	Items            []ItemPayload   `json:"items"`
	People           int             `json:"people"`
	Vegetarian       bool            `json:"vegetarian"`
	Allergies        []string        `json:"allergies,omitempty"`
	Address          string          `json:"address"`
	Instructions     string          `json:"instructions,omitempty"`
	SelectedDate     time.Time       `json:"selected_date"`
	SlotDay          string          `json:"slot_day"`
	SlotStart        string          `json:"slot_start"`
	SlotEnd          string          `json:"slot_end"`
	PlacedAt         time.Time       `json:"placed_at"`
	TimerExpiry      time.Time       `json:"timer_expiry"`
	RemainingSeconds int64           `json:"remaining_seconds"`
	Status           string          `json:"status"`
	PaymentMethod    string          `json:"payment_method"`
	PaymentStatus    string          `json:"payment_status"`
	Paid             bool            `json:"paid"`
	Total            decimal.Decimal `json:"total"`
}

// ItemPayload is one ordered dish inside an OrderPayload.
type ItemPayload struct {
	DishID    kernel.UUID     `json:"dish_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderMessage pushes an order snapshot under one of the order-carrying types.
type OrderMessage struct {
	Type  MessageType  `json:"type"`
	Order OrderPayload `json:"order"`
}

// NewOrderMessage builds an order push of the given type, deriving the
// countdown from the stored deadline at send time.
func NewOrderMessage(kind MessageType, aggregate *order.Order, now time.Time) OrderMessage {
	items := make([]ItemPayload, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemPayload{
			DishID:    item.DishID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	var remaining int64
	if left := aggregate.TimerExpiry().Sub(now); left > 0 {
		remaining = int64(left.Seconds())
	}

	slot := aggregate.TimeSlot()
	return OrderMessage{
		Type: kind,
		Order: OrderPayload{
			ID:               aggregate.ID(),
			CustomerID:       aggregate.CustomerID(),
			ChefID:           aggregate.ChefID(),
			Items:            items,
			People:           aggregate.People(),
			Vegetarian:       aggregate.Vegetarian(),
			Allergies:        aggregate.Allergies(),
			Address:          aggregate.Address(),
			Instructions:     aggregate.Instructions(),
			SelectedDate:     aggregate.SelectedDate(),
			SlotDay:          slot.Day(),
			SlotStart:        slot.Start(),
			SlotEnd:          slot.End(),
			PlacedAt:         aggregate.PlacedAt(),
			TimerExpiry:      aggregate.TimerExpiry(),
			RemainingSeconds: remaining,
			Status:           aggregate.Status().String(),
			PaymentMethod:    aggregate.PaymentMethod().String(),
			PaymentStatus:    aggregate.PaymentStatus().String(),
			Paid:             aggregate.IsPaid(),
			Total:            aggregate.Total(),
		},
	}
}

// PaymentVerificationMessage carries a chef's verdict on a submitted payment.
type PaymentVerificationMessage struct {
	Type     MessageType `json:"type"`
	OrderID  kernel.UUID `json:"order_id"`
	Verified bool        `json:"verified"`
	Message  string      `json:"message"`
}

// NewPaymentVerificationMessage builds a verification push.
func NewPaymentVerificationMessage(orderID kernel.UUID, verified bool, message string) PaymentVerificationMessage {
	return PaymentVerificationMessage{
		Type:     TypePaymentVerification,
		OrderID:  orderID,
		Verified: verified,
		Message:  message,
	}
}

// AckMessage confirms a client request such as AUTH or JOIN_GLOBAL_CHAT.
type AckMessage struct {
	Type MessageType `json:"type"`
	OK   bool        `json:"ok"`
	Info string      `json:"info,omitempty"`
}

func unmarshalEnvelope(raw []byte, envelope *Envelope) error {
	return json.Unmarshal(raw, envelope)
}

func marshalOrDrop(v any) ([]byte, bool) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	return data, true
}
