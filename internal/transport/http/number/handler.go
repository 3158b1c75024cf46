package number

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bazaar-dev/bazaar/internal/dto"
	"github.com/bazaar-dev/bazaar/internal/presentation/http/response"
	service "github.com/bazaar-dev/bazaar/internal/service/number"
	"go.opentelemetry.io/otel"
)

var httpTracer = otel.Tracer("github.com/bazaar-dev/bazaar/transport/http/number")

// Handler exposes the number allocation endpoint over HTTP.
type Handler struct {
	allocator *service.Allocator
}

// NewHandler constructs a number Handler.
func NewHandler(allocator *service.Allocator) *Handler {
	return &Handler{allocator: allocator}
}

// Register routes with provided Echo group.
func Register(e *echo.Echo, h *Handler) {
	e.POST("/numbers", h.allocate)
}

// allocate mints one unique number. An exhausted attempt budget renders as a
// conflict; cancellation and storage faults keep their own kinds.
func (h *Handler) allocate(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "numbers.allocate")
	defer span.End()

	value, err := h.allocator.Allocate(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).WithData(dto.NumberResponse{Number: value}).Build()
}
