package customer

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bazaar-dev/bazaar/internal/dto"
	"github.com/bazaar-dev/bazaar/internal/entity"
	"github.com/bazaar-dev/bazaar/internal/pagination"
	"github.com/bazaar-dev/bazaar/internal/presentation/http/response"
	service "github.com/bazaar-dev/bazaar/internal/service/customer"
	"github.com/bazaar-dev/bazaar/internal/service/purchase"
	"github.com/bazaar-dev/bazaar/pkg/errorbank"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var httpTracer = otel.Tracer("github.com/bazaar-dev/bazaar/transport/http/customer")

// Handler exposes customer endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs a customer Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with provided Echo group.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/customers")
	g.GET("", h.list)
	g.POST("/:id/purchase", h.canPurchase)
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

	ctx, span := httpTracer.Start(c.Request().Context(), "customers.list")
	defer span.End()

	result, err := h.svc.List(ctx, page, pageSize)
	if err != nil {
		return b.WithError(err).Build()
	}

	mapped := pagination.Map(result, toDTO)
	return b.WithPage(mapped.Items, mapped.Meta()).Build()
}

// canPurchase answers the eligibility query. Rule failures come back as a
// 200 with valid=false; only gateway faults render as errors.
func (h *Handler) canPurchase(c echo.Context) error {
	b := response.New(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return b.WithError(errorbank.BadRequest("invalid id", errorbank.WithCause(err))).Build()
	}

	var payload dto.ValidatePurchaseRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "customers.canPurchase", trace.WithAttributes(attribute.Int64("customer.id", id)))
	defer span.End()

	result, err := h.svc.CanPurchase(ctx, purchase.Candidate{
		CustomerID:    id,
		PurchaseValue: payload.PurchaseValue,
	})
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(dto.ValidatePurchaseResponse{
		Valid:    result.Valid(),
		Failures: result.Failures,
	}).Build()
}

func toDTO(customer entity.Customer) dto.CustomerResponse {
	orders := make([]dto.OrderResponse, 0, len(customer.Orders))
	for _, order := range customer.Orders {
		orders = append(orders, dto.OrderResponse{
			ID:         order.ID,
			Value:      order.Value,
			CustomerID: order.CustomerID,
			OrderDate:  order.OrderDate,
		})
	}
	return dto.CustomerResponse{
		ID:     customer.ID,
		Name:   customer.Name,
		Orders: orders,
	}
}
