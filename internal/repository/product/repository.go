package product

import (
	"context"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bazaar-dev/bazaar/internal/database"
	"github.com/bazaar-dev/bazaar/internal/entity"
	"github.com/bazaar-dev/bazaar/internal/pagination"
)

var repoTracer = otel.Tracer("github.com/bazaar-dev/bazaar/repository/product")

// Repository encapsulates read access for catalog products.
type Repository struct {
	reader *bun.DB
}

// NewRepository wires a repository backed by configured database connections.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{reader: conns.Reader}
}

// List returns one page of products ordered by name.
func (r *Repository) List(ctx context.Context, page, pageSize int) (pagination.Page[entity.Product], error) {
	ctx, span := repoTracer.Start(ctx, "ProductRepository.List", trace.WithAttributes(attribute.Int("page", page)))
	defer span.End()

	page, pageSize = pagination.Clamp(page, pageSize)

	var products []entity.Product
	total, err := r.reader.NewSelect().
		Model(&products).
		OrderExpr("name ASC").
		Limit(pageSize).
		Offset(pagination.Offset(page, pageSize)).
		ScanAndCount(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return pagination.Page[entity.Product]{}, err
	}

	return pagination.Page[entity.Product]{
		Items:      products,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
	}, nil
}
