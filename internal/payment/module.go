package payment

import "go.uber.org/fx"

// Module registers every payment strategy and the factory that dispatches
// between them.
var Module = fx.Options(
	fx.Provide(
		fx.Annotate(NewPix, fx.As(new(Strategy)), fx.ResultTags(`group:"payment.strategies"`)),
		fx.Annotate(NewCreditCard, fx.As(new(Strategy)), fx.ResultTags(`group:"payment.strategies"`)),
		fx.Annotate(NewPaypal, fx.As(new(Strategy)), fx.ResultTags(`group:"payment.strategies"`)),
		fx.Annotate(NewFactory, fx.ParamTags(`group:"payment.strategies"`)),
	),
)
