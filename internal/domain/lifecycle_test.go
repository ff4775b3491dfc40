// internal/domain/lifecycle_test.go
package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var allStatuses = []OrderStatus{StatusPending, StatusAssigned, StatusInTransit, StatusDelivered, StatusCancelled}

func orderIn(status OrderStatus, partnerID string) Order {
	return Order{
		ID:                1,
		SenderID:          "USRSEND1",
		DeliveryPartnerID: partnerID,
		PickupAddress:     "123 Pickup St",
		DeliveryAddress:   "456 Dropoff Ave",
		Amount:            decimal.RequireFromString("50.00"),
		Status:            status,
		CreatedAt:         time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

var (
	owner    = Requester{ID: "USRSEND1", Role: RoleSender}
	stranger = Requester{ID: "USRSEND2", Role: RoleSender}
	partner  = Requester{ID: "USRPART1", Role: RoleDeliveryPartner}
	other    = Requester{ID: "USRPART2", Role: RoleDeliveryPartner}
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name        string
		req         Requester
		order       Order
		requested   OrderStatus
		partnerID   string
		wantErr     error
		wantTo      OrderStatus
		wantPartner string
	}{
		{name: "unknown status", req: partner, order: orderIn(StatusPending, ""), requested: "shipped", wantErr: ErrInvalidStatus},
		{name: "uppercase status", req: partner, order: orderIn(StatusPending, ""), requested: "PENDING", wantErr: ErrInvalidStatus},
		{name: "sender cancels own pending order", req: owner, order: orderIn(StatusPending, ""), requested: StatusCancelled, wantTo: StatusCancelled},
		{name: "sender cancels foreign order", req: stranger, order: orderIn(StatusPending, ""), requested: StatusCancelled, wantErr: ErrForbidden},
		{name: "sender cancels assigned order", req: owner, order: orderIn(StatusAssigned, "USRPART1"), requested: StatusCancelled, wantErr: ErrForbidden},
		{name: "sender assigns", req: owner, order: orderIn(StatusPending, ""), requested: StatusAssigned, wantErr: ErrForbidden},
		{name: "partner self assigns", req: partner, order: orderIn(StatusPending, ""), requested: StatusAssigned, wantTo: StatusAssigned, wantPartner: "USRPART1"},
		{name: "partner assigns other partner", req: partner, order: orderIn(StatusPending, ""), requested: StatusAssigned, partnerID: "USRPART2", wantTo: StatusAssigned, wantPartner: "USRPART2"},
		{name: "partner reassigns assigned order", req: other, order: orderIn(StatusAssigned, "USRPART1"), requested: StatusAssigned, wantErr: ErrInvalidTransition},
		{name: "assigned partner picks up", req: partner, order: orderIn(StatusAssigned, "USRPART1"), requested: StatusInTransit, wantTo: StatusInTransit},
		{name: "other partner picks up", req: other, order: orderIn(StatusAssigned, "USRPART1"), requested: StatusInTransit, wantErr: ErrForbidden},
		{name: "pick up pending order", req: partner, order: orderIn(StatusPending, ""), requested: StatusInTransit, wantErr: ErrInvalidTransition},
		{name: "assigned partner delivers", req: partner, order: orderIn(StatusInTransit, "USRPART1"), requested: StatusDelivered, wantTo: StatusDelivered},
		{name: "other partner delivers", req: other, order: orderIn(StatusInTransit, "USRPART1"), requested: StatusDelivered, wantErr: ErrForbidden},
		{name: "deliver skipping transit", req: partner, order: orderIn(StatusAssigned, "USRPART1"), requested: StatusDelivered, wantErr: ErrInvalidTransition},
		{name: "partner cancels", req: partner, order: orderIn(StatusPending, ""), requested: StatusCancelled, wantErr: ErrForbidden},
		{name: "partner moves back to pending", req: partner, order: orderIn(StatusAssigned, "USRPART1"), requested: StatusPending, wantErr: ErrInvalidTransition},
		{name: "unknown role", req: Requester{ID: "x", Role: "admin"}, order: orderIn(StatusPending, ""), requested: StatusAssigned, wantErr: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Transition(tt.req, tt.order, tt.requested, tt.partnerID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Transition() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Transition() unexpected error: %v", err)
			}
			if d.To != tt.wantTo || d.From != tt.order.Status || d.PartnerID != tt.wantPartner {
				t.Errorf("Transition() = %+v, want to=%s from=%s partner=%q", d, tt.wantTo, tt.order.Status, tt.wantPartner)
			}
		})
	}
}

func TestTransition_TerminalStatesRejectEverything(t *testing.T) {
	for _, terminal := range []OrderStatus{StatusDelivered, StatusCancelled} {
		for _, req := range []Requester{owner, stranger, partner, other} {
			for _, requested := range allStatuses {
				_, err := Transition(req, orderIn(terminal, "USRPART1"), requested, "")
				if !errors.Is(err, ErrInvalidTransition) {
					t.Errorf("Transition(%s, %s -> %s) error = %v, want ErrInvalidTransition", req.Role, terminal, requested, err)
				}
			}
		}
	}
}

func TestTransition_SenderOnlyEverCancels(t *testing.T) {
	for _, current := range []OrderStatus{StatusPending, StatusAssigned, StatusInTransit} {
		for _, requested := range allStatuses {
			if requested == StatusCancelled {
				continue
			}
			_, err := Transition(owner, orderIn(current, "USRPART1"), requested, "")
			if !errors.Is(err, ErrForbidden) {
				t.Errorf("sender %s -> %s error = %v, want ErrForbidden", current, requested, err)
			}
		}
	}
}

func TestCancel(t *testing.T) {
	d, err := Cancel(owner, orderIn(StatusPending, ""))
	if err != nil {
		t.Fatalf("Cancel() unexpected error: %v", err)
	}
	if d.To != StatusCancelled || d.From != StatusPending {
		t.Errorf("Cancel() = %+v, want pending -> cancelled", d)
	}

	for _, current := range allStatuses {
		if current == StatusPending {
			continue
		}
		_, err := Cancel(owner, orderIn(current, "USRPART1"))
		if !errors.Is(err, ErrConflict) && !errors.Is(err, ErrForbidden) {
			t.Errorf("Cancel() on %s error = %v, want ErrConflict or ErrForbidden", current, err)
		}
	}

	if _, err := Cancel(stranger, orderIn(StatusPending, "")); !errors.Is(err, ErrForbidden) {
		t.Errorf("Cancel() by stranger error = %v, want ErrForbidden", err)
	}
	if _, err := Cancel(partner, orderIn(StatusPending, "")); !errors.Is(err, ErrForbidden) {
		t.Errorf("Cancel() by partner error = %v, want ErrForbidden", err)
	}
}

func TestAuthorizeRead(t *testing.T) {
	order := orderIn(StatusPending, "")
	if err := AuthorizeRead(owner, order); err != nil {
		t.Errorf("owner read: %v", err)
	}
	if err := AuthorizeRead(other, order); err != nil {
		t.Errorf("partner read: %v", err)
	}
	if err := AuthorizeRead(stranger, order); !errors.Is(err, ErrForbidden) {
		t.Errorf("stranger read error = %v, want ErrForbidden", err)
	}
}

func TestAuthorizeEarningsAndCreate(t *testing.T) {
	if err := AuthorizeEarnings(partner); err != nil {
		t.Errorf("AuthorizeEarnings(partner) = %v", err)
	}
	if err := AuthorizeEarnings(owner); !errors.Is(err, ErrForbidden) {
		t.Errorf("AuthorizeEarnings(sender) = %v, want ErrForbidden", err)
	}
	if err := AuthorizeCreate(owner); err != nil {
		t.Errorf("AuthorizeCreate(sender) = %v", err)
	}
	if err := AuthorizeCreate(partner); !errors.Is(err, ErrForbidden) {
		t.Errorf("AuthorizeCreate(partner) = %v, want ErrForbidden", err)
	}
}

func TestLifecycle_EndToEnd(t *testing.T) {
	o, err := NewOrder(owner.ID, "Test Package", "123 Pickup St", "456 Dropoff Ave", decimal.RequireFromString("50.00"), time.Now())
	if err != nil {
		t.Fatalf("NewOrder() unexpected error: %v", err)
	}
	if o.Status != StatusPending {
		t.Fatalf("new order status = %s, want pending", o.Status)
	}

	apply := func(d Decision) {
		o.Status = d.To
		if d.PartnerID != "" {
			o.DeliveryPartnerID = d.PartnerID
		}
	}

	d, err := Transition(partner, *o, StatusAssigned, "")
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if d.PartnerID != partner.ID {
		t.Fatalf("assign partner = %q, want %q", d.PartnerID, partner.ID)
	}
	apply(d)

	if _, err := Transition(stranger, *o, StatusCancelled, ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger cancel error = %v, want ErrForbidden", err)
	}

	d, err = Transition(partner, *o, StatusInTransit, "")
	if err != nil {
		t.Fatalf("in_transit: %v", err)
	}
	apply(d)

	d, err = Transition(partner, *o, StatusDelivered, "")
	if err != nil {
		t.Fatalf("delivered: %v", err)
	}
	apply(d)

	for _, requested := range allStatuses {
		if _, err := Transition(partner, *o, requested, ""); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("after delivery, %s error = %v, want ErrInvalidTransition", requested, err)
		}
	}
}

func TestNewOrder_Validation(t *testing.T) {
	now := time.Now()
	if _, err := NewOrder("USR1", "", "a", "b", decimal.NewFromInt(-10), now); !errors.Is(err, ErrAmountNegative) {
		t.Errorf("negative amount error = %v, want ErrAmountNegative", err)
	}
	if _, err := NewOrder("USR1", "", "", "b", decimal.NewFromInt(10), now); !errors.Is(err, ErrMissingFields) {
		t.Errorf("missing pickup error = %v, want ErrMissingFields", err)
	}
	if _, err := NewOrder("USR1", "", "a", "b", decimal.Zero, now); err != nil {
		t.Errorf("zero amount unexpected error: %v", err)
	}

	amounts := []struct {
		raw     string
		wantErr error
	}{
		{"12.34", nil},
		{"12.30", nil},
		{"9999999999.99", nil},
		{"12.345", ErrAmountInvalid},
		{"0.001", ErrAmountInvalid},
		{"10000000000", ErrAmountInvalid},
	}
	for _, tt := range amounts {
		_, err := NewOrder("USR1", "", "a", "b", decimal.RequireFromString(tt.raw), now)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("NewOrder(amount=%s) error = %v, want %v", tt.raw, err, tt.wantErr)
		}
	}
}
