package order

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bazaar-dev/bazaar/internal/dto"
	"github.com/bazaar-dev/bazaar/internal/entity"
	"github.com/bazaar-dev/bazaar/internal/pagination"
	"github.com/bazaar-dev/bazaar/internal/presentation/http/response"
	service "github.com/bazaar-dev/bazaar/internal/service/order"
	"github.com/bazaar-dev/bazaar/pkg/errorbank"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var httpTracer = otel.Tracer("github.com/bazaar-dev/bazaar/transport/http/order")

// Handler exposes order endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs an order Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with provided Echo group.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/orders")
	g.GET("", h.list)
	g.GET("/:id", h.getByID)
	g.POST("", h.place)
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.list")
	defer span.End()

	result, err := h.svc.List(ctx, page, pageSize)
	if err != nil {
		return b.WithError(err).Build()
	}

	mapped := pagination.Map(result, toDTO)
	return b.WithPage(mapped.Items, mapped.Meta()).Build()
}

func (h *Handler) getByID(c echo.Context) error {
	b := response.New(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return b.WithError(errorbank.BadRequest("invalid id", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.getByID", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	order, err := h.svc.Get(ctx, id)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(toDTO(*order)).Build()
}

func (h *Handler) place(c echo.Context) error {
	b := response.New(c)

	var payload dto.PlaceOrderRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}
	if payload.PaymentMethod == "" {
		return b.WithError(errorbank.BadRequest("paymentMethod is required")).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.place", trace.WithAttributes(
		attribute.Int64("customer.id", payload.CustomerID),
		attribute.String("payment.method", payload.PaymentMethod),
	))
	defer span.End()

	order, err := h.svc.Place(ctx, payload.PaymentMethod, payload.PaymentValue, payload.CustomerID)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).WithData(toDTO(*order)).Build()
}

func toDTO(order entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:         order.ID,
		Value:      order.Value,
		CustomerID: order.CustomerID,
		OrderDate:  order.OrderDate,
	}
}
