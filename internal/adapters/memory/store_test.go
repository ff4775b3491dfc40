package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahabubulhasibshawon/delivery-hub/internal/domain"
)

func TestStore_Users(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, &domain.User{ID: "USR1", Email: "a@example.com", Role: domain.RoleSender}))
	assert.ErrorIs(t, s.CreateUser(ctx, &domain.User{ID: "USR2", Email: "A@example.com"}), domain.ErrEmailTaken)

	u, err := s.FindUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "USR1", u.ID)

	none, err := s.FindUserByID(ctx, "USR9")
	require.NoError(t, err)
	assert.Nil(t, none)

	require.NoError(t, s.UpdateUserProfile(ctx, "USR1", "Name", "123"))
	u, _ = s.FindUserByID(ctx, "USR1")
	assert.Equal(t, "Name", u.Name)
	assert.ErrorIs(t, s.UpdateUserProfile(ctx, "USR9", "x", "y"), domain.ErrNotFound)
}

func TestStore_ListOrdersNewestFirstWithLimit(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		o, err := domain.NewOrder("USR1", "", "A", "B", decimal.NewFromInt(1), base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, err)
		require.NoError(t, s.CreateOrder(ctx, o))
	}
	other, _ := domain.NewOrder("USR2", "", "A", "B", decimal.NewFromInt(1), base)
	require.NoError(t, s.CreateOrder(ctx, other))

	got, err := s.ListOrders(ctx, domain.OrderFilter{SenderID: "USR1", Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestStore_ConditionalUpdateAllowsOneWinner(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	o, _ := domain.NewOrder("USR1", "", "A", "B", decimal.NewFromInt(1), time.Now())
	require.NoError(t, s.CreateOrder(ctx, o))

	var (
		wg   sync.WaitGroup
		wins int32
	)
	for _, partner := range []string{"P1", "P2", "P3", "P4"} {
		wg.Add(1)
		go func(partner string) {
			defer wg.Done()
			ok, err := s.UpdateOrderStatus(ctx, domain.Decision{OrderID: o.ID, From: domain.StatusPending, To: domain.StatusAssigned, PartnerID: partner})
			if err == nil && ok {
				atomic.AddInt32(&wins, 1)
			}
		}(partner)
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
	ok, err := s.CancelOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_PartnerEarnings(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	add := func(partner string, status domain.OrderStatus, amount string) {
		o, _ := domain.NewOrder("USR1", "", "A", "B", decimal.RequireFromString(amount), time.Now())
		require.NoError(t, s.CreateOrder(ctx, o))
		if partner != "" {
			_, _ = s.UpdateOrderStatus(ctx, domain.Decision{OrderID: o.ID, From: domain.StatusPending, To: domain.StatusAssigned, PartnerID: partner})
		}
		if status != domain.StatusAssigned && status != domain.StatusPending {
			_, _ = s.UpdateOrderStatus(ctx, domain.Decision{OrderID: o.ID, From: domain.StatusAssigned, To: status})
		}
	}
	add("P1", domain.StatusDelivered, "12.50")
	add("P1", domain.StatusDelivered, "7.50")
	add("P1", domain.StatusInTransit, "100")
	add("P2", domain.StatusDelivered, "30")
	add("", domain.StatusPending, "5")

	e, err := s.PartnerEarnings(ctx, "P1")
	require.NoError(t, err)
	assert.True(t, e.Total.Equal(decimal.NewFromInt(20)), "total = %s", e.Total)
	assert.Len(t, e.Daily, 1)
}
