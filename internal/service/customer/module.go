package customer

import (
	"go.uber.org/fx"

	customerrepo "github.com/bazaar-dev/bazaar/internal/repository/customer"
	"github.com/bazaar-dev/bazaar/internal/service/purchase"
)

// Module provides the customer service to Fx.
var Module = fx.Provide(func(repo *customerrepo.Repository, validator *purchase.Validator) *Service {
	return NewService(repo, validator)
})
