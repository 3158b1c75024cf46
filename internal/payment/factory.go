package payment

import (
	"strings"

	"github.com/bazaar-dev/bazaar/pkg/errorbank"
)

// Factory resolves a payment strategy by method name, case-insensitively.
type Factory struct {
	strategies map[string]Strategy
}

// NewFactory indexes the registered strategies.
func NewFactory(strategies []Strategy) *Factory {
	indexed := make(map[string]Strategy, len(strategies))
	for _, s := range strategies {
		if s == nil {
			continue
		}
		indexed[strings.ToLower(s.Method())] = s
	}
	return &Factory{strategies: indexed}
}

// Resolve returns the strategy for the method, or a bad-request error when
// the method is unknown.
func (f *Factory) Resolve(method string) (Strategy, error) {
	s, ok := f.strategies[strings.ToLower(strings.TrimSpace(method))]
	if !ok {
		return nil, errorbank.BadRequest("unsupported payment method", errorbank.WithDetail("method", method))
	}
	return s, nil
}
