package app

import (
	"go.uber.org/fx"

	"github.com/bazaar-dev/bazaar/internal/cache"
	"github.com/bazaar-dev/bazaar/internal/clock"
	"github.com/bazaar-dev/bazaar/internal/config"
	"github.com/bazaar-dev/bazaar/internal/database"
	"github.com/bazaar-dev/bazaar/internal/logger"
	"github.com/bazaar-dev/bazaar/internal/messaging"
	"github.com/bazaar-dev/bazaar/internal/observability"
	"github.com/bazaar-dev/bazaar/internal/payment"
	repositorycustomer "github.com/bazaar-dev/bazaar/internal/repository/customer"
	repositorynumber "github.com/bazaar-dev/bazaar/internal/repository/number"
	repositoryorder "github.com/bazaar-dev/bazaar/internal/repository/order"
	repositoryproduct "github.com/bazaar-dev/bazaar/internal/repository/product"
	httpserver "github.com/bazaar-dev/bazaar/internal/server/http"
	servicecustomer "github.com/bazaar-dev/bazaar/internal/service/customer"
	servicenumber "github.com/bazaar-dev/bazaar/internal/service/number"
	serviceorder "github.com/bazaar-dev/bazaar/internal/service/order"
	serviceproduct "github.com/bazaar-dev/bazaar/internal/service/product"
	servicepurchase "github.com/bazaar-dev/bazaar/internal/service/purchase"
	transporthttp "github.com/bazaar-dev/bazaar/internal/transport/http"
	"github.com/bazaar-dev/bazaar/internal/worker"
	workerorder "github.com/bazaar-dev/bazaar/internal/worker/order"
)

// Core provides the foundational modules shared across executables.
var Core = fx.Options(
	config.Module,
	clock.Module,
	cache.Module,
	database.Module,
	logger.Module,
	messaging.Module,
	observability.Module,
	payment.Module,
	repositorycustomer.Module,
	repositorynumber.Module,
	repositoryorder.Module,
	repositoryproduct.Module,
	servicepurchase.Module,
	servicecustomer.Module,
	servicenumber.Module,
	serviceorder.Module,
	serviceproduct.Module,
)

// HTTP wires the HTTP transport on top of the core modules.
var HTTP = fx.Options(
	Core,
	httpserver.Module,
	transporthttp.Module,
)

// Worker exposes background worker processing.
var Worker = fx.Options(
	Core,
	worker.Module,
	workerorder.Module,
)

// Module is the default application wiring (HTTP only).
var Module = HTTP
