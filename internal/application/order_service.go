// internal/application/order_service.go
package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/mahabubulhasibshawon/delivery-hub/internal/domain"
	"github.com/mahabubulhasibshawon/delivery-hub/internal/ports"
)

const (
	cachePrefix         = "orders:"
	listCachePrefix     = cachePrefix + "list:"
	earningsCachePrefix = cachePrefix + "earnings:"

	// Bumped on every order write and embedded in read-model keys, so an
	// entry filled from a read that raced a write is never looked up again.
	// It lives outside cachePrefix so invalidation does not reset it.
	cacheGenerationKey = "orders-generation"
)

// LifecycleRecorder receives lifecycle outcomes for metrics.
type LifecycleRecorder interface {
	RecordTransition(from, to domain.OrderStatus)
	RecordDenial(kind string)
	RecordCacheLookup(hit bool)
}

type noopRecorder struct{}

func (noopRecorder) RecordTransition(_, _ domain.OrderStatus) {}
func (noopRecorder) RecordDenial(string)                      {}
func (noopRecorder) RecordCacheLookup(bool)                   {}

type CreateOrderInput struct {
	PackageDescription string
	PickupAddress      string
	DeliveryAddress    string
	Amount             *decimal.Decimal
}

type OrderService struct {
	orders    ports.OrderRepositoryPort
	users     ports.UserRepositoryPort
	cache     ports.CachePort
	publisher ports.EventPublisherPort
	recorder  LifecycleRecorder
	logger    *log.Entry
	now       func() time.Time
}

// OrderServiceOption configures optional collaborators.
type OrderServiceOption func(*OrderService)

func WithCache(cache ports.CachePort) OrderServiceOption {
	return func(s *OrderService) { s.cache = cache }
}

func WithPublisher(p ports.EventPublisherPort) OrderServiceOption {
	return func(s *OrderService) { s.publisher = p }
}

func WithRecorder(r LifecycleRecorder) OrderServiceOption {
	return func(s *OrderService) {
		if r != nil {
			s.recorder = r
		}
	}
}

func WithLogger(l *log.Entry) OrderServiceOption {
	return func(s *OrderService) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewOrderService(orders ports.OrderRepositoryPort, users ports.UserRepositoryPort, opts ...OrderServiceOption) *OrderService {
	s := &OrderService{
		orders:   orders,
		users:    users,
		recorder: noopRecorder{},
		logger:   log.WithField("component", "orders"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *OrderService) CreateOrder(ctx context.Context, req domain.Requester, in CreateOrderInput) (*domain.Order, error) {
	if err := domain.AuthorizeCreate(req); err != nil {
		return nil, s.deny(req, err)
	}
	if in.Amount == nil {
		return nil, domain.ErrMissingFields
	}
	order, err := domain.NewOrder(req.ID, in.PackageDescription, in.PickupAddress, in.DeliveryAddress, *in.Amount, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.publish(ctx, domain.OrderEvent{
		Type:     domain.EventOrderCreated,
		OrderID:  order.ID,
		SenderID: order.SenderID,
		To:       order.Status,
		Amount:   order.Amount,
		At:       order.CreatedAt,
	})
	s.logger.WithFields(log.Fields{"order_id": order.ID, "sender_id": order.SenderID}).Info("order created")
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, req domain.Requester, id int64) (*domain.Order, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizeRead(req, *order); err != nil {
		return nil, s.deny(req, err)
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, req domain.Requester, q domain.ListQuery) ([]*domain.Order, error) {
	filter, err := domain.BuildListFilter(req, q)
	if err != nil {
		return nil, s.deny(req, err)
	}

	key, cacheable := s.cacheKey(ctx, listCachePrefix, filter.Key())
	var cached []*domain.Order
	if cacheable && s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	orders, err := s.orders.ListOrders(ctx, filter)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	if cacheable {
		s.cacheSet(ctx, key, orders)
	}
	return orders, nil
}

// UpdateStatus validates the status token, loads the order, asks the
// lifecycle for a decision and persists it conditionally.
func (s *OrderService) UpdateStatus(ctx context.Context, req domain.Requester, id int64, rawStatus, partnerID string) (domain.Decision, error) {
	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return domain.Decision{}, s.deny(req, err)
	}
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return domain.Decision{}, err
	}
	d, err := domain.Transition(req, *order, status, partnerID)
	if err != nil {
		return domain.Decision{}, s.deny(req, err)
	}
	if d.To == domain.StatusAssigned && d.PartnerID != req.ID {
		if err := s.checkPartner(ctx, d.PartnerID); err != nil {
			return domain.Decision{}, err
		}
	}
	if err := s.apply(ctx, req, *order, d, func() (bool, error) {
		return s.orders.UpdateOrderStatus(ctx, d)
	}); err != nil {
		return domain.Decision{}, err
	}
	return d, nil
}

func (s *OrderService) CancelOrder(ctx context.Context, req domain.Requester, id int64) (domain.Decision, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return domain.Decision{}, err
	}
	d, err := domain.Cancel(req, *order)
	if err != nil {
		return domain.Decision{}, s.deny(req, err)
	}
	if err := s.apply(ctx, req, *order, d, func() (bool, error) {
		return s.orders.CancelOrder(ctx, id)
	}); err != nil {
		return domain.Decision{}, err
	}
	return d, nil
}

func (s *OrderService) Earnings(ctx context.Context, req domain.Requester) (*domain.Earnings, error) {
	if err := domain.AuthorizeEarnings(req); err != nil {
		return nil, s.deny(req, err)
	}

	key, cacheable := s.cacheKey(ctx, earningsCachePrefix, req.ID)
	var cached domain.Earnings
	if cacheable && s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	earnings, err := s.orders.PartnerEarnings(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if cacheable {
		s.cacheSet(ctx, key, earnings)
	}
	return earnings, nil
}

func (s *OrderService) apply(ctx context.Context, req domain.Requester, order domain.Order, d domain.Decision, persist func() (bool, error)) error {
	ok, err := persist()
	if err != nil {
		return err
	}
	if !ok {
		return s.deny(req, fmt.Errorf("%w: order %d is no longer %s", domain.ErrConflict, order.ID, d.From))
	}

	partnerID := order.DeliveryPartnerID
	if d.PartnerID != "" {
		partnerID = d.PartnerID
	}
	s.recorder.RecordTransition(d.From, d.To)
	s.invalidate(ctx)
	s.publish(ctx, domain.OrderEvent{
		Type:      domain.EventOrderStatusChanged,
		OrderID:   order.ID,
		SenderID:  order.SenderID,
		PartnerID: partnerID,
		From:      d.From,
		To:        d.To,
		Amount:    order.Amount,
		At:        s.now().UTC(),
	})
	s.logger.WithFields(log.Fields{
		"order_id": order.ID,
		"user_id":  req.ID,
		"from":     d.From,
		"to":       d.To,
	}).Info("order status updated")
	return nil
}

func (s *OrderService) findOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.orders.FindOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %d", domain.ErrNotFound, id)
	}
	return order, nil
}

func (s *OrderService) checkPartner(ctx context.Context, partnerID string) error {
	user, err := s.users.FindUserByID(ctx, partnerID)
	if err != nil {
		return err
	}
	if user == nil || user.Role != domain.RoleDeliveryPartner {
		return fmt.Errorf("%w: %q is not a delivery partner", domain.ErrInvalidPartner, partnerID)
	}
	return nil
}

func (s *OrderService) deny(req domain.Requester, err error) error {
	kind := domain.Kind(err)
	s.recorder.RecordDenial(kind)
	s.logger.WithFields(log.Fields{"user_id": req.ID, "role": req.Role, "kind": kind}).WithError(err).Info("request denied")
	return err
}

// cacheKey builds prefix + generation + ":" + suffix. It reports false when
// there is no cache or the generation cannot be read, in which case the
// caller goes straight to the store.
func (s *OrderService) cacheKey(ctx context.Context, prefix, suffix string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	var gen int64
	data, err := s.cache.Get(ctx, cacheGenerationKey)
	switch {
	case errors.Is(err, ports.ErrCacheMiss):
	case err != nil:
		s.logger.WithError(err).Warn("cache generation read failed")
		return "", false
	default:
		if gen, err = strconv.ParseInt(string(data), 10, 64); err != nil {
			s.logger.WithError(err).Warn("cache generation undecodable")
			return "", false
		}
	}
	return prefix + strconv.FormatInt(gen, 10) + ":" + suffix, true
}

func (s *OrderService) cacheGet(ctx context.Context, key string, dst interface{}) bool {
	if s.cache == nil {
		return false
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil || len(data) == 0 {
		if err != nil && !errors.Is(err, ports.ErrCacheMiss) {
			s.logger.WithError(err).WithField("key", key).Warn("cache read failed")
		}
		s.recorder.RecordCacheLookup(false)
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("cache entry undecodable")
		s.recorder.RecordCacheLookup(false)
		return false
	}
	s.recorder.RecordCacheLookup(true)
	return true
}

func (s *OrderService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("cache write failed")
	}
}

func (s *OrderService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.Incr(ctx, cacheGenerationKey); err != nil {
		s.logger.WithError(err).Warn("cache generation bump failed")
	}
	if err := s.cache.DeleteByPrefix(ctx, cachePrefix); err != nil {
		s.logger.WithError(err).Warn("cache invalidation failed")
	}
}

func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	key := strconv.FormatInt(event.OrderID, 10)
	if err := s.publisher.Publish(ctx, key, event); err != nil {
		s.logger.WithError(err).WithFields(log.Fields{"order_id": event.OrderID, "type": event.Type}).Error("failed to publish order event")
	}
}
