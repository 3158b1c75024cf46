package http

import (
	"go.uber.org/fx"

	customertransport "github.com/bazaar-dev/bazaar/internal/transport/http/customer"
	numbertransport "github.com/bazaar-dev/bazaar/internal/transport/http/number"
	ordertransport "github.com/bazaar-dev/bazaar/internal/transport/http/order"
	producttransport "github.com/bazaar-dev/bazaar/internal/transport/http/product"
)

// Module aggregates all HTTP transport handlers.
var Module = fx.Options(
	customertransport.Module,
	numbertransport.Module,
	ordertransport.Module,
	producttransport.Module,
)
