package customer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bazaar-dev/bazaar/internal/database"
	"github.com/bazaar-dev/bazaar/internal/entity"
	"github.com/bazaar-dev/bazaar/internal/pagination"
)

var repoTracer = otel.Tracer("github.com/bazaar-dev/bazaar/repository/customer")

// ErrNotFound is returned when a customer is missing.
var ErrNotFound = errors.New("customer not found")

// Repository encapsulates read access for customers. Customers are created
// by the registration path and are read-only here.
type Repository struct {
	reader *bun.DB
}

// NewRepository wires a repository backed by configured database connections.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{reader: conns.Reader}
}

// Exists reports whether a customer row with the given id is present.
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.Exists", trace.WithAttributes(attribute.Int64("customer.id", id)))
	defer span.End()

	exists, err := r.reader.NewSelect().Model((*entity.Customer)(nil)).Where("id = ?", id).Exists(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "exists failed")
		return false, err
	}
	return exists, nil
}

// GetByID fetches a customer by primary key.
func (r *Repository) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.GetByID", trace.WithAttributes(attribute.Int64("customer.id", id)))
	defer span.End()

	customer := new(entity.Customer)
	err := r.reader.NewSelect().Model(customer).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return customer, nil
}

// List returns one page of customers with their order history, ordered by id.
func (r *Repository) List(ctx context.Context, page, pageSize int) (pagination.Page[entity.Customer], error) {
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.List", trace.WithAttributes(attribute.Int("page", page)))
	defer span.End()

	page, pageSize = pagination.Clamp(page, pageSize)

	var customers []entity.Customer
	total, err := r.reader.NewSelect().
		Model(&customers).
		Relation("Orders").
		OrderExpr("id ASC").
		Limit(pageSize).
		Offset(pagination.Offset(page, pageSize)).
		ScanAndCount(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return pagination.Page[entity.Customer]{}, err
	}

	return pagination.Page[entity.Customer]{
		Items:      customers,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
	}, nil
}
