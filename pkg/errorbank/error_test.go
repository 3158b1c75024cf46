package errorbank

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUnwrapsAppErrors(t *testing.T) {
	base := NotFound("customer not found")
	wrapped := fmt.Errorf("lookup: %w", base)

	assert.Same(t, base, From(wrapped))
}

func TestFromKeepsContextAbortsDistinct(t *testing.T) {
	cancelled := From(context.Canceled)
	require.NotNil(t, cancelled)
	assert.Equal(t, KindCancelled, cancelled.Kind())
	assert.Equal(t, http.StatusRequestTimeout, cancelled.StatusCode())

	deadline := From(context.DeadlineExceeded)
	require.NotNil(t, deadline)
	assert.Equal(t, KindDeadline, deadline.Kind())
	assert.Equal(t, http.StatusGatewayTimeout, deadline.StatusCode())
}

func TestFromWrapsUnknownErrorsAsInternal(t *testing.T) {
	cause := errors.New("boom")
	appErr := From(cause)

	assert.Equal(t, KindInternal, appErr.Kind())
	assert.ErrorIs(t, appErr, cause)
}

func TestStatusCodesPerKind(t *testing.T) {
	assert.Equal(t, http.StatusConflict, Conflict("taken").StatusCode())
	assert.Equal(t, http.StatusUnprocessableEntity, Unprocessable("nope").StatusCode())
	assert.Equal(t, http.StatusBadRequest, BadRequest("bad").StatusCode())
}

func TestDetailsAccumulate(t *testing.T) {
	appErr := Unprocessable("purchase is not eligible",
		WithDetail("failures", map[string][]string{"customerId": {"not found"}}),
	)

	require.Contains(t, appErr.Details(), "failures")
}
