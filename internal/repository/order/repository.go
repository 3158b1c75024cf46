package order

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bazaar-dev/bazaar/internal/database"
	"github.com/bazaar-dev/bazaar/internal/entity"
	"github.com/bazaar-dev/bazaar/internal/pagination"
)

var repoTracer = otel.Tracer("github.com/bazaar-dev/bazaar/repository/order")

// ErrNotFound is returned when an order is missing.
var ErrNotFound = errors.New("order not found")

// Repository encapsulates read/write access for orders.
type Repository struct {
	writer *bun.DB
	reader *bun.DB
}

// NewRepository wires a repository backed by configured database connections.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{
		writer: conns.Writer,
		reader: conns.Reader,
	}
}

// Create persists a new order using the write connection.
func (r *Repository) Create(ctx context.Context, order *entity.Order) error {
	if order == nil {
		return errors.New("nil order")
	}
	ctx, span := repoTracer.Start(ctx, "OrderRepository.Create", trace.WithAttributes(attribute.Int64("order.customer_id", order.CustomerID)))
	defer span.End()

	_, err := r.writer.NewInsert().Model(order).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}

// GetByID fetches an order by primary key using the read replica when available.
func (r *Repository) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.GetByID", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	order := new(entity.Order)
	err := r.reader.NewSelect().Model(order).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return order, nil
}

// HasAny reports whether the customer has placed at least one order ever.
func (r *Repository) HasAny(ctx context.Context, customerID int64) (bool, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.HasAny", trace.WithAttributes(attribute.Int64("customer.id", customerID)))
	defer span.End()

	exists, err := r.reader.NewSelect().
		Model((*entity.Order)(nil)).
		Where("customer_id = ?", customerID).
		Exists(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "exists failed")
		return false, err
	}
	return exists, nil
}

// HasSince reports whether the customer has an order placed at or after the
// given instant. The boundary is inclusive.
func (r *Repository) HasSince(ctx context.Context, customerID int64, since time.Time) (bool, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.HasSince", trace.WithAttributes(attribute.Int64("customer.id", customerID)))
	defer span.End()

	exists, err := r.reader.NewSelect().
		Model((*entity.Order)(nil)).
		Where("customer_id = ?", customerID).
		Where("order_date >= ?", since).
		Exists(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "exists failed")
		return false, err
	}
	return exists, nil
}

// List returns one page of orders, newest first.
func (r *Repository) List(ctx context.Context, page, pageSize int) (pagination.Page[entity.Order], error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.List", trace.WithAttributes(attribute.Int("page", page)))
	defer span.End()

	page, pageSize = pagination.Clamp(page, pageSize)

	var orders []entity.Order
	total, err := r.reader.NewSelect().
		Model(&orders).
		OrderExpr("id DESC").
		Limit(pageSize).
		Offset(pagination.Offset(page, pageSize)).
		ScanAndCount(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return pagination.Page[entity.Order]{}, err
	}

	return pagination.Page[entity.Order]{
		Items:      orders,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
	}, nil
}
