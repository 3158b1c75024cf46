package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/bazaar-dev/bazaar/internal/cache"
	"github.com/bazaar-dev/bazaar/internal/clock"
	"github.com/bazaar-dev/bazaar/internal/config"
	"github.com/bazaar-dev/bazaar/internal/entity"
	"github.com/bazaar-dev/bazaar/internal/messaging"
	"github.com/bazaar-dev/bazaar/internal/pagination"
	"github.com/bazaar-dev/bazaar/internal/payment"
	repo "github.com/bazaar-dev/bazaar/internal/repository/order"
	"github.com/bazaar-dev/bazaar/internal/service/purchase"
	"github.com/bazaar-dev/bazaar/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/bazaar-dev/bazaar/service/order")

// Store is the order persistence port.
type Store interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	List(ctx context.Context, page, pageSize int) (pagination.Page[entity.Order], error)
}

// Eligibility decides whether the candidate purchase may proceed.
type Eligibility interface {
	Validate(ctx context.Context, candidate purchase.Candidate) (purchase.Result, error)
}

// Resolver dispatches a payment method name onto a strategy.
type Resolver interface {
	Resolve(method string) (payment.Strategy, error)
}

// Service owns the order placement flow: eligibility gate, payment dispatch,
// persistence, cache refresh, and event publication.
type Service struct {
	store       Store
	eligibility Eligibility
	payments    Resolver
	clock       clock.Clock
	cache       cache.Store
	cacheTTL    time.Duration
	logger      *zap.Logger
	publisher   messaging.Client
	messaging   messagingConfig
}

// messagingConfig contains messaging specific knobs we care about.
type messagingConfig struct {
	enabled bool
	topic   string
}

// Params defines dependencies for constructing Service.
type Params struct {
	Store       Store
	Eligibility Eligibility
	Payments    Resolver
	Clock       clock.Clock
	Cache       cache.Store
	Config      config.Config
	Logger      *zap.Logger
	Publisher   messaging.Client
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return &Service{
		store:       p.Store,
		eligibility: p.Eligibility,
		payments:    p.Payments,
		clock:       p.Clock,
		cache:       p.Cache,
		cacheTTL:    p.Config.Cache.DefaultTTL,
		logger:      p.Logger,
		publisher:   p.Publisher,
		messaging: messagingConfig{
			enabled: p.Config.Messaging.Enabled,
			topic:   p.Config.Messaging.Kafka.Topic,
		},
	}
}

// Place validates eligibility, processes the payment, and commits the order.
// A failed rule set surfaces as an unprocessable error carrying the per-field
// failures; the eligibility decision itself never mutates state.
func (s *Service) Place(ctx context.Context, method string, value decimal.Decimal, customerID int64) (*entity.Order, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Place", trace.WithAttributes(
		attribute.Int64("customer.id", customerID),
		attribute.String("payment.method", method),
	))
	defer span.End()

	result, err := s.eligibility.Validate(ctx, purchase.Candidate{
		CustomerID:    customerID,
		PurchaseValue: value,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "eligibility check failed")
		return nil, errorbank.From(err)
	}
	if !result.Valid() {
		span.SetStatus(codes.Error, "purchase not eligible")
		return nil, errorbank.Unprocessable("purchase is not eligible", errorbank.WithDetail("failures", result.Failures))
	}

	strategy, err := s.payments.Resolve(method)
	if err != nil {
		return nil, err
	}
	if err := strategy.Process(ctx, value, customerID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "payment failed")
		return nil, errorbank.Internal("payment processing failed", errorbank.WithCause(err))
	}

	order := &entity.Order{
		Value:      value,
		CustomerID: customerID,
		OrderDate:  s.clock.Now(),
	}
	if err := s.store.Create(ctx, order); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to create order", errorbank.WithCause(err))
	}

	if err := s.storeInCache(ctx, order); err != nil {
		s.logger.Warn("orders cache write failed", zap.Int64("id", order.ID), zap.Error(err))
	}

	s.publishOrderPlaced(ctx, order, method)
	return order, nil
}

// Get retrieves an order by id, consulting cache when available.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Order, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Get", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	if order, err := s.getFromCache(ctx, id); err == nil {
		return order, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("orders cache read failed", zap.Int64("id", id), zap.Error(err))
	}

	order, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errorbank.NotFound("order not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load order", errorbank.WithCause(err))
	}

	if err := s.storeInCache(ctx, order); err != nil {
		s.logger.Warn("orders cache write failed", zap.Int64("id", id), zap.Error(err))
	}

	return order, nil
}

// List returns one page of orders.
func (s *Service) List(ctx context.Context, page, pageSize int) (pagination.Page[entity.Order], error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.List", trace.WithAttributes(attribute.Int("page", page)))
	defer span.End()

	result, err := s.store.List(ctx, page, pageSize)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return pagination.Page[entity.Order]{}, errorbank.Internal("failed to list orders", errorbank.WithCause(err))
	}
	return result, nil
}

func (s *Service) publishOrderPlaced(ctx context.Context, order *entity.Order, method string) {
	if !s.messaging.enabled || s.publisher == nil {
		return
	}
	event := OrderPlacedEvent{
		ID:            order.ID,
		Value:         order.Value,
		CustomerID:    order.CustomerID,
		PaymentMethod: method,
		OrderDate:     order.OrderDate,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal order placed", zap.Error(err))
		return
	}
	if err := s.publisher.Publish(ctx, []byte(fmt.Sprintf("order-%d", order.ID)), payload); err != nil {
		s.logger.Error("publish order placed", zap.Error(err))
	}
}

func (s *Service) cacheKey(id int64) string {
	return fmt.Sprintf("orders:%d", id)
}

func (s *Service) getFromCache(ctx context.Context, id int64) (*entity.Order, error) {
	if s.cache == nil {
		return nil, cache.ErrCacheMiss
	}
	bytes, err := s.cache.Get(ctx, s.cacheKey(id))
	if err != nil {
		return nil, err
	}
	var order entity.Order
	if err := json.Unmarshal(bytes, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Service) storeInCache(ctx context.Context, order *entity.Order) error {
	if s.cache == nil || order == nil {
		return nil
	}
	bytes, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, s.cacheKey(order.ID), bytes, s.cacheTTL)
}

// OrderPlacedEvent is emitted when a new order is persisted.
type OrderPlacedEvent struct {
	ID            int64           `json:"id"`
	Value         decimal.Decimal `json:"value"`
	CustomerID    int64           `json:"customerId"`
	PaymentMethod string          `json:"paymentMethod"`
	OrderDate     time.Time       `json:"orderDate"`
}
