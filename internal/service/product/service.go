package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/bazaar-dev/bazaar/internal/cache"
	"github.com/bazaar-dev/bazaar/internal/entity"
	"github.com/bazaar-dev/bazaar/internal/pagination"
	"github.com/bazaar-dev/bazaar/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/bazaar-dev/bazaar/service/product")

// Store is the product read port.
type Store interface {
	List(ctx context.Context, page, pageSize int) (pagination.Page[entity.Product], error)
}

// Service exposes catalog reads with a cache-aside page cache. The catalog
// changes rarely, so serving a slightly stale page is fine.
type Service struct {
	store    Store
	cache    cache.Store
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewService wires a new Service instance.
func NewService(store Store, cacheStore cache.Store, cacheTTL time.Duration, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		cache:    cacheStore,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// List returns one page of products, consulting cache first.
func (s *Service) List(ctx context.Context, page, pageSize int) (pagination.Page[entity.Product], error) {
	ctx, span := serviceTracer.Start(ctx, "ProductService.List", trace.WithAttributes(attribute.Int("page", page)))
	defer span.End()

	page, pageSize = pagination.Clamp(page, pageSize)
	key := s.cacheKey(page, pageSize)

	if cached, err := s.getFromCache(ctx, key); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("products cache read failed", zap.String("key", key), zap.Error(err))
	}

	result, err := s.store.List(ctx, page, pageSize)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return pagination.Page[entity.Product]{}, errorbank.Internal("failed to list products", errorbank.WithCause(err))
	}

	if err := s.storeInCache(ctx, key, result); err != nil {
		s.logger.Warn("products cache write failed", zap.String("key", key), zap.Error(err))
	}

	return result, nil
}

func (s *Service) cacheKey(page, pageSize int) string {
	return fmt.Sprintf("products:%d:%d", page, pageSize)
}

func (s *Service) getFromCache(ctx context.Context, key string) (pagination.Page[entity.Product], error) {
	if s.cache == nil {
		return pagination.Page[entity.Product]{}, cache.ErrCacheMiss
	}
	bytes, err := s.cache.Get(ctx, key)
	if err != nil {
		return pagination.Page[entity.Product]{}, err
	}
	var page pagination.Page[entity.Product]
	if err := json.Unmarshal(bytes, &page); err != nil {
		return pagination.Page[entity.Product]{}, err
	}
	return page, nil
}

func (s *Service) storeInCache(ctx context.Context, key string, page pagination.Page[entity.Product]) error {
	if s.cache == nil {
		return nil
	}
	bytes, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, key, bytes, s.cacheTTL)
}
