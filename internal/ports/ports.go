// internal/ports/ports.go
package ports

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=ports

import (
	"context"
	"errors"

	"github.com/mahabubulhasibshawon/delivery-hub/internal/domain"
)

// UserRepositoryPort persists identities. Lookups return nil, nil when no
// user matches.
type UserRepositoryPort interface {
	CreateUser(ctx context.Context, user *domain.User) error
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, id string) (*domain.User, error)
	UpdateUserProfile(ctx context.Context, id, name, phone string) error
}

// OrderRepositoryPort persists orders. FindOrderByID returns nil, nil when
// the order does not exist. UpdateOrderStatus and CancelOrder are
// conditional on the current stored status and report false when no row
// matched.
type OrderRepositoryPort interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	FindOrderByID(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, d domain.Decision) (bool, error)
	CancelOrder(ctx context.Context, id int64) (bool, error)
	PartnerEarnings(ctx context.Context, partnerID string) (*domain.Earnings, error)
	Ping(ctx context.Context) error
}

// ErrCacheMiss is returned by CachePort.Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}) error
	// Incr atomically increments the integer stored at key and returns the
	// new value. A missing key counts as 0.
	Incr(ctx context.Context, key string) (int64, error)
	DeleteByPrefix(ctx context.Context, prefix string) error
	Ping(ctx context.Context) error
}

// EventPublisherPort emits order events keyed by order id.
type EventPublisherPort interface {
	Publish(ctx context.Context, key string, event interface{}) error
}
