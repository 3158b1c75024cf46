package product

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bazaar-dev/bazaar/internal/dto"
	"github.com/bazaar-dev/bazaar/internal/entity"
	"github.com/bazaar-dev/bazaar/internal/pagination"
	"github.com/bazaar-dev/bazaar/internal/presentation/http/response"
	service "github.com/bazaar-dev/bazaar/internal/service/product"
	"go.opentelemetry.io/otel"
)

var httpTracer = otel.Tracer("github.com/bazaar-dev/bazaar/transport/http/product")

// Handler exposes catalog endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs a product Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with provided Echo group.
func Register(e *echo.Echo, h *Handler) {
	e.GET("/products", h.list)
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

	ctx, span := httpTracer.Start(c.Request().Context(), "products.list")
	defer span.End()

	result, err := h.svc.List(ctx, page, pageSize)
	if err != nil {
		return b.WithError(err).Build()
	}

	mapped := pagination.Map(result, func(p entity.Product) dto.ProductResponse {
		return dto.ProductResponse{ID: p.ID, Name: p.Name}
	})
	return b.WithPage(mapped.Items, mapped.Meta()).Build()
}
