package order

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/bazaar-dev/bazaar/internal/cache"
	"github.com/bazaar-dev/bazaar/internal/clock"
	"github.com/bazaar-dev/bazaar/internal/config"
	"github.com/bazaar-dev/bazaar/internal/messaging"
	"github.com/bazaar-dev/bazaar/internal/payment"
	repo "github.com/bazaar-dev/bazaar/internal/repository/order"
	"github.com/bazaar-dev/bazaar/internal/service/purchase"
)

// Module provides the order service to Fx.
var Module = fx.Provide(func(
	repository *repo.Repository,
	validator *purchase.Validator,
	payments *payment.Factory,
	clk clock.Clock,
	store cache.Store,
	cfg config.Config,
	logger *zap.Logger,
	publisher messaging.Client,
) *Service {
	return NewService(Params{
		Store:       repository,
		Eligibility: validator,
		Payments:    payments,
		Clock:       clk,
		Cache:       store,
		Config:      cfg,
		Logger:      logger,
		Publisher:   publisher,
	})
})
