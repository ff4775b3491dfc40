package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderEvent is published after every successful order write.
type OrderEvent struct {
	Type      string          `json:"type"`
	OrderID   int64           `json:"order_id"`
	SenderID  string          `json:"sender_id"`
	PartnerID string          `json:"partner_id,omitempty"`
	From      OrderStatus     `json:"from,omitempty"`
	To        OrderStatus     `json:"to"`
	Amount    decimal.Decimal `json:"amount"`
	At        time.Time       `json:"at"`
}
