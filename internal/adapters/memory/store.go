// Package memory holds in-process stores for local runs and tests. They
// honour the same conditional-update contract as the PostgreSQL stores.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/mahabubulhasibshawon/delivery-hub/internal/domain"
	"github.com/mahabubulhasibshawon/delivery-hub/internal/ports"
)

type Store struct {
	mu          sync.RWMutex
	users       map[string]domain.User
	emails      map[string]string
	orders      map[int64]domain.Order
	nextOrderID int64
}

var (
	_ ports.UserRepositoryPort  = (*Store)(nil)
	_ ports.OrderRepositoryPort = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		users:  make(map[string]domain.User),
		emails: make(map[string]string),
		orders: make(map[int64]domain.Order),
	}
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) CreateUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, taken := s.emails[email]; taken {
		return domain.ErrEmailTaken
	}
	s.users[user.ID] = *user
	s.emails[email] = user.ID
	return nil
}

func (s *Store) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	u := s.users[id]
	return &u, nil
}

func (s *Store) FindUserByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *Store) UpdateUserProfile(_ context.Context, id, name, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return fmt.Errorf("%w: user %s", domain.ErrNotFound, id)
	}
	u.Name, u.Phone = name, phone
	s.users[id] = u
	return nil
}

func (s *Store) CreateOrder(_ context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextOrderID++
	order.ID = s.nextOrderID
	s.orders[order.ID] = *order
	return nil
}

func (s *Store) FindOrderByID(_ context.Context, id int64) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (s *Store) ListOrders(_ context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if !filter.Matches(o) {
			continue
		}
		o := o
		result = append(result, &o)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

// UpdateOrderStatus applies d only while the order is still in d.From.
func (s *Store) UpdateOrderStatus(_ context.Context, d domain.Decision) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[d.OrderID]
	if !ok || o.Status != d.From {
		return false, nil
	}
	o.Status = d.To
	if d.PartnerID != "" {
		o.DeliveryPartnerID = d.PartnerID
	}
	s.orders[d.OrderID] = o
	return true, nil
}

func (s *Store) CancelOrder(ctx context.Context, id int64) (bool, error) {
	return s.UpdateOrderStatus(ctx, domain.Decision{OrderID: id, From: domain.StatusPending, To: domain.StatusCancelled})
}

func (s *Store) PartnerEarnings(_ context.Context, partnerID string) (*domain.Earnings, error) {
	s.mu.RLock()
	orders := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, o)
	}
	s.mu.RUnlock()

	e := domain.SummarizeEarnings(partnerID, orders)
	return &e, nil
}
