package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bazaar-dev/bazaar/pkg/errorbank"
)

func newTestFactory() *Factory {
	logger := zap.NewNop()
	return NewFactory([]Strategy{
		NewPix(logger),
		NewCreditCard(logger),
		NewPaypal(logger),
	})
}

func TestResolveKnownMethods(t *testing.T) {
	factory := newTestFactory()

	for _, method := range []string{"pix", "creditcard", "paypal"} {
		s, err := factory.Resolve(method)
		require.NoError(t, err)
		assert.Equal(t, method, s.Method())
	}
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	factory := newTestFactory()

	s, err := factory.Resolve("  CreditCard ")
	require.NoError(t, err)
	assert.Equal(t, "creditcard", s.Method())
}

func TestResolveUnknownMethod(t *testing.T) {
	factory := newTestFactory()

	_, err := factory.Resolve("barter")
	require.Error(t, err)
	assert.Equal(t, errorbank.KindBadRequest, errorbank.From(err).Kind())
}
