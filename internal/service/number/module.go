package number

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/bazaar-dev/bazaar/internal/config"
	numberrepo "github.com/bazaar-dev/bazaar/internal/repository/number"
)

// Module provides the number allocator to Fx.
var Module = fx.Provide(func(repo *numberrepo.Repository, cfg config.Config, logger *zap.Logger) *Allocator {
	return NewAllocator(repo, cfg.Allocator.Range, cfg.Allocator.MaxAttempts, logger)
})
