package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ListType selects a predefined status group when listing orders.
type ListType string

const (
	ListActive  ListType = "active"
	ListHistory ListType = "history"
)

// ListQuery carries the raw list parameters a client supplied.
type ListQuery struct {
	Type      string
	Status    string
	Limit     int
	PartnerID string
}

// OrderFilter is the concrete store query. Empty fields do not restrict;
// Limit <= 0 means unlimited. Results are always newest first.
type OrderFilter struct {
	SenderID  string
	PartnerID string
	Statuses  []OrderStatus
	Limit     int
}

// BuildListFilter maps a requester and list parameters to a store filter.
// Senders are always scoped to their own orders.
func BuildListFilter(req Requester, q ListQuery) (OrderFilter, error) {
	var f OrderFilter

	switch ListType(q.Type) {
	case ListActive:
		f.Statuses = ActiveStatuses()
	case ListHistory:
		f.Statuses = HistoryStatuses()
	case "":
		if q.Status != "" {
			s, err := ParseStatus(q.Status)
			if err != nil {
				return OrderFilter{}, err
			}
			f.Statuses = []OrderStatus{s}
		}
	default:
		return OrderFilter{}, fmt.Errorf("%w: %q", ErrInvalidListType, q.Type)
	}

	if q.Limit > 0 {
		f.Limit = q.Limit
	}

	switch req.Role {
	case RoleSender:
		f.SenderID = req.ID
	case RoleDeliveryPartner:
		f.PartnerID = q.PartnerID
	default:
		return OrderFilter{}, fmt.Errorf("%w: unknown role %q", ErrForbidden, req.Role)
	}
	return f, nil
}

// Matches reports whether o satisfies every restriction except Limit.
func (f OrderFilter) Matches(o Order) bool {
	if f.SenderID != "" && o.SenderID != f.SenderID {
		return false
	}
	if f.PartnerID != "" && o.DeliveryPartnerID != f.PartnerID {
		return false
	}
	if len(f.Statuses) == 0 {
		return true
	}
	for _, s := range f.Statuses {
		if o.Status == s {
			return true
		}
	}
	return false
}

// Key is a deterministic string form of f, used for cache keys.
func (f OrderFilter) Key() string {
	statuses := make([]string, len(f.Statuses))
	for i, s := range f.Statuses {
		statuses[i] = string(s)
	}
	return strings.Join([]string{
		"sender=" + f.SenderID,
		"partner=" + f.PartnerID,
		"status=" + strings.Join(statuses, ","),
		"limit=" + strconv.Itoa(f.Limit),
	}, ";")
}
