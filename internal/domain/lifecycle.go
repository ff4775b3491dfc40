package domain

import "fmt"

// Decision is what the store must persist after a permitted transition.
// From is the status the decision was based on; the store only applies the
// change while the row still has it.
type Decision struct {
	OrderID   int64
	From      OrderStatus
	To        OrderStatus
	PartnerID string
}

// Transition decides whether req may move order to requested. partnerID is
// only consulted when requested is StatusAssigned; an empty value means the
// requesting partner assigns itself.
func Transition(req Requester, order Order, requested OrderStatus, partnerID string) (Decision, error) {
	if !requested.IsValid() {
		return Decision{}, fmt.Errorf("%w: %q", ErrInvalidStatus, requested)
	}
	if order.Status.IsTerminal() {
		return Decision{}, fmt.Errorf("%w: order is already %s", ErrInvalidTransition, order.Status)
	}

	switch req.Role {
	case RoleSender:
		return senderTransition(req, order, requested)
	case RoleDeliveryPartner:
		return partnerTransition(req, order, requested, partnerID)
	default:
		return Decision{}, fmt.Errorf("%w: unknown role %q", ErrForbidden, req.Role)
	}
}

func senderTransition(req Requester, order Order, requested OrderStatus) (Decision, error) {
	if requested != StatusCancelled || order.Status != StatusPending || req.ID != order.SenderID {
		return Decision{}, fmt.Errorf("%w: senders can only cancel pending orders owned by them", ErrForbidden)
	}
	return Decision{OrderID: order.ID, From: order.Status, To: StatusCancelled}, nil
}

func partnerTransition(req Requester, order Order, requested OrderStatus, partnerID string) (Decision, error) {
	d := Decision{OrderID: order.ID, From: order.Status, To: requested}

	switch requested {
	case StatusAssigned:
		if order.Status != StatusPending {
			return Decision{}, invalidEdge(order.Status, requested)
		}
		d.PartnerID = partnerID
		if d.PartnerID == "" {
			d.PartnerID = req.ID
		}
		return d, nil
	case StatusInTransit:
		if order.Status != StatusAssigned {
			return Decision{}, invalidEdge(order.Status, requested)
		}
	case StatusDelivered:
		if order.Status != StatusInTransit {
			return Decision{}, invalidEdge(order.Status, requested)
		}
	case StatusCancelled:
		return Decision{}, fmt.Errorf("%w: delivery partners cannot cancel orders", ErrForbidden)
	default:
		return Decision{}, invalidEdge(order.Status, requested)
	}

	if order.DeliveryPartnerID != req.ID {
		return Decision{}, fmt.Errorf("%w: only the assigned delivery partner can move this order", ErrForbidden)
	}
	return d, nil
}

func invalidEdge(from, to OrderStatus) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// Cancel decides a cancellation requested through the dedicated cancel
// operation: only the owning sender, only while the order is pending. A
// non-pending order owned by the caller yields ErrConflict.
func Cancel(req Requester, order Order) (Decision, error) {
	if !req.IsSender() {
		return Decision{}, fmt.Errorf("%w: only senders can cancel orders", ErrForbidden)
	}
	if req.ID != order.SenderID {
		return Decision{}, fmt.Errorf("%w: order belongs to another sender", ErrForbidden)
	}
	if order.Status != StatusPending {
		return Decision{}, fmt.Errorf("%w: order is %s, only pending orders can be cancelled", ErrConflict, order.Status)
	}
	return Decision{OrderID: order.ID, From: StatusPending, To: StatusCancelled}, nil
}

// AuthorizeRead permits partners to view any order and senders their own.
func AuthorizeRead(req Requester, order Order) error {
	if req.IsPartner() || req.ID == order.SenderID {
		return nil
	}
	return fmt.Errorf("%w: order belongs to another sender", ErrForbidden)
}

// AuthorizeCreate permits only senders to place orders.
func AuthorizeCreate(req Requester) error {
	if !req.IsSender() {
		return fmt.Errorf("%w: only senders can create orders", ErrForbidden)
	}
	return nil
}

// AuthorizeEarnings permits only delivery partners to read earnings.
func AuthorizeEarnings(req Requester) error {
	if !req.IsPartner() {
		return fmt.Errorf("%w: earnings are only available to delivery partners", ErrForbidden)
	}
	return nil
}
