package number

import "go.uber.org/fx"

// Module provides the number repository to Fx.
var Module = fx.Provide(NewRepository)
