package product

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/bazaar-dev/bazaar/internal/cache"
	"github.com/bazaar-dev/bazaar/internal/config"
	productrepo "github.com/bazaar-dev/bazaar/internal/repository/product"
)

// Module provides the product service to Fx.
var Module = fx.Provide(func(repo *productrepo.Repository, store cache.Store, cfg config.Config, logger *zap.Logger) *Service {
	return NewService(repo, store, cfg.Cache.DefaultTTL, logger)
})
