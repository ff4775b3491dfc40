package domain

import "fmt"

// OrderStatus is one of the five persisted lifecycle tokens.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusAssigned  OrderStatus = "assigned"
	StatusInTransit OrderStatus = "in_transit"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

var (
	activeStatuses  = []OrderStatus{StatusPending, StatusAssigned, StatusInTransit}
	historyStatuses = []OrderStatus{StatusDelivered, StatusCancelled}
)

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAssigned, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition may leave s.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ParseStatus accepts only the lowercase boundary tokens.
func ParseStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// ActiveStatuses returns the statuses of orders still in progress.
func ActiveStatuses() []OrderStatus {
	return append([]OrderStatus(nil), activeStatuses...)
}

// HistoryStatuses returns the terminal statuses.
func HistoryStatuses() []OrderStatus {
	return append([]OrderStatus(nil), historyStatuses...)
}
