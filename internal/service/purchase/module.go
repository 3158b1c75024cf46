package purchase

import (
	"go.uber.org/fx"

	"github.com/bazaar-dev/bazaar/internal/clock"
	customerrepo "github.com/bazaar-dev/bazaar/internal/repository/customer"
	orderrepo "github.com/bazaar-dev/bazaar/internal/repository/order"
)

// Module provides the purchase validator to Fx.
var Module = fx.Provide(func(customers *customerrepo.Repository, orders *orderrepo.Repository, clk *clock.Business) *Validator {
	return NewValidator(customers, orders, clk)
})
