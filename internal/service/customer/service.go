package customer

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bazaar-dev/bazaar/internal/entity"
	"github.com/bazaar-dev/bazaar/internal/pagination"
	"github.com/bazaar-dev/bazaar/internal/service/purchase"
	"github.com/bazaar-dev/bazaar/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/bazaar-dev/bazaar/service/customer")

// Store is the customer read port.
type Store interface {
	List(ctx context.Context, page, pageSize int) (pagination.Page[entity.Customer], error)
}

// Eligibility answers the standalone can-purchase query.
type Eligibility interface {
	Validate(ctx context.Context, candidate purchase.Candidate) (purchase.Result, error)
}

// Service exposes customer reads and the eligibility query.
type Service struct {
	store       Store
	eligibility Eligibility
}

// NewService wires a new Service instance.
func NewService(store Store, eligibility Eligibility) *Service {
	return &Service{store: store, eligibility: eligibility}
}

// List returns one page of customers with their order history.
func (s *Service) List(ctx context.Context, page, pageSize int) (pagination.Page[entity.Customer], error) {
	ctx, span := serviceTracer.Start(ctx, "CustomerService.List", trace.WithAttributes(attribute.Int("page", page)))
	defer span.End()

	result, err := s.store.List(ctx, page, pageSize)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return pagination.Page[entity.Customer]{}, errorbank.Internal("failed to list customers", errorbank.WithCause(err))
	}
	return result, nil
}

// CanPurchase runs the eligibility rules for the customer without committing
// anything.
func (s *Service) CanPurchase(ctx context.Context, candidate purchase.Candidate) (purchase.Result, error) {
	ctx, span := serviceTracer.Start(ctx, "CustomerService.CanPurchase", trace.WithAttributes(attribute.Int64("customer.id", candidate.CustomerID)))
	defer span.End()

	result, err := s.eligibility.Validate(ctx, candidate)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "eligibility check failed")
		return purchase.Result{}, errorbank.From(err)
	}
	return result, nil
}
