package purchase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazaar-dev/bazaar/internal/clock"
)

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time { return f.now }

type fakeCustomers struct {
	ids map[int64]bool
	err error
}

func (f *fakeCustomers) Exists(_ context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.ids[id], nil
}

type fakeOrders struct {
	orders map[int64][]time.Time
	err    error
}

func (f *fakeOrders) HasAny(_ context.Context, customerID int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return len(f.orders[customerID]) > 0, nil
}

func (f *fakeOrders) HasSince(_ context.Context, customerID int64, since time.Time) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, placed := range f.orders[customerID] {
		if !placed.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

// businessNoon is a Monday 12:00 in Sao Paulo (15:00 UTC), squarely inside
// the business window so only the rule under test can fail.
var businessNoon = time.Date(2026, time.March, 2, 15, 0, 0, 0, time.UTC)

func newTestValidator(t *testing.T, now time.Time, customers *fakeCustomers, orders *fakeOrders) *Validator {
	t.Helper()
	business, err := clock.NewBusiness(fixedClock{now: now}, "America/Sao_Paulo")
	require.NoError(t, err)
	return NewValidator(customers, orders, business)
}

func registered(id int64) *fakeCustomers {
	return &fakeCustomers{ids: map[int64]bool{id: true}}
}

func noOrders() *fakeOrders {
	return &fakeOrders{orders: map[int64][]time.Time{}}
}

func TestValidatePurchaseValueMustBePositive(t *testing.T) {
	v := newTestValidator(t, businessNoon, registered(1), noOrders())

	for _, value := range []string{"0", "-5"} {
		result, err := v.Validate(context.Background(), Candidate{
			CustomerID:    1,
			PurchaseValue: decimal.RequireFromString(value),
		})
		require.NoError(t, err)
		assert.False(t, result.Valid())
		assert.Contains(t, result.Failures[FieldPurchaseValue], "purchase value must be greater than zero")
	}
}

func TestValidateNonPositiveCustomerSkipsHistoryRules(t *testing.T) {
	customers := &fakeCustomers{ids: map[int64]bool{}}
	v := newTestValidator(t, businessNoon, customers, noOrders())

	result, err := v.Validate(context.Background(), Candidate{
		CustomerID:    0,
		PurchaseValue: decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	assert.False(t, result.Valid())
	require.Len(t, result.Failures[FieldCustomerID], 1)
	assert.Equal(t, "customer id must be greater than zero", result.Failures[FieldCustomerID][0])
}

func TestValidateUnknownCustomerReportsNotFound(t *testing.T) {
	v := newTestValidator(t, businessNoon, &fakeCustomers{ids: map[int64]bool{}}, noOrders())

	result, err := v.Validate(context.Background(), Candidate{
		CustomerID:    42,
		PurchaseValue: decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	assert.False(t, result.Valid())
	assert.Contains(t, result.Failures[FieldCustomerID], "customer 42 not found")
}

func TestValidateOnePurchasePerMonth(t *testing.T) {
	monthAgo := businessNoon.AddDate(0, -1, 0)

	tests := []struct {
		name       string
		orderDate  time.Time
		wantRecent bool
	}{
		{"exactly one month ago is still recent", monthAgo, true},
		{"one month and a day ago has aged out", monthAgo.AddDate(0, 0, -1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			orders := &fakeOrders{orders: map[int64][]time.Time{1: {tc.orderDate}}}
			v := newTestValidator(t, businessNoon, registered(1), orders)

			result, err := v.Validate(context.Background(), Candidate{
				CustomerID:    1,
				PurchaseValue: decimal.NewFromInt(50),
			})
			require.NoError(t, err)

			if tc.wantRecent {
				assert.Contains(t, result.Failures[FieldCustomerID], "a customer may place only one purchase per month")
			} else {
				assert.True(t, result.Valid(), "failures: %v", result.Failures)
			}
		})
	}
}

func TestValidateFirstPurchaseCap(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		hasPrior bool
		wantFail bool
	}{
		{"exactly 100 is allowed", "100", false, false},
		{"just over 100 is rejected", "100.01", false, true},
		{"cap does not apply to returning customers", "100.01", true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			orders := noOrders()
			if tc.hasPrior {
				// Old enough not to trip the monthly rule.
				orders.orders[1] = []time.Time{businessNoon.AddDate(0, -2, 0)}
			}
			v := newTestValidator(t, businessNoon, registered(1), orders)

			result, err := v.Validate(context.Background(), Candidate{
				CustomerID:    1,
				PurchaseValue: decimal.RequireFromString(tc.value),
			})
			require.NoError(t, err)

			if tc.wantFail {
				assert.Contains(t, result.Failures[FieldCustomerID], "a first purchase may not exceed 100.00")
			} else {
				assert.True(t, result.Valid(), "failures: %v", result.Failures)
			}
		})
	}
}

func TestValidateBusinessHours(t *testing.T) {
	// Sao Paulo sits at UTC-3; each instant below is the UTC projection of
	// the named local time.
	tests := []struct {
		name     string
		instant  time.Time
		wantOpen bool
	}{
		{"monday 08:00 opens the window", time.Date(2026, time.March, 2, 11, 0, 0, 0, time.UTC), true},
		{"monday 07:59 is too early", time.Date(2026, time.March, 2, 10, 59, 0, 0, time.UTC), false},
		{"saturday 10:00 is a weekend", time.Date(2026, time.March, 7, 13, 0, 0, 0, time.UTC), false},
		{"friday 18:00 closes the window", time.Date(2026, time.March, 6, 21, 0, 0, 0, time.UTC), true},
		{"friday 18:01 is too late", time.Date(2026, time.March, 6, 21, 1, 0, 0, time.UTC), false},
	}

	const message = "purchases are only accepted during business hours (8am to 6pm) on working days (Monday to Friday)"

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := newTestValidator(t, tc.instant, registered(1), noOrders())

			result, err := v.Validate(context.Background(), Candidate{
				CustomerID:    1,
				PurchaseValue: decimal.NewFromInt(50),
			})
			require.NoError(t, err)

			if tc.wantOpen {
				assert.NotContains(t, result.Failures[FieldCustomerID], message)
			} else {
				assert.Contains(t, result.Failures[FieldCustomerID], message)
			}
		})
	}
}

func TestValidateBusinessHoursCheckedWithoutCustomerID(t *testing.T) {
	// Saturday, and no customer id supplied: both failures accumulate.
	saturday := time.Date(2026, time.March, 7, 13, 0, 0, 0, time.UTC)
	v := newTestValidator(t, saturday, &fakeCustomers{ids: map[int64]bool{}}, noOrders())

	result, err := v.Validate(context.Background(), Candidate{
		CustomerID:    0,
		PurchaseValue: decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	assert.Len(t, result.Failures[FieldCustomerID], 2)
}

func TestValidateAccumulatesAllFailures(t *testing.T) {
	// Unknown customer, zero value: amount and identity rules both report.
	v := newTestValidator(t, businessNoon, &fakeCustomers{ids: map[int64]bool{}}, noOrders())

	result, err := v.Validate(context.Background(), Candidate{
		CustomerID:    7,
		PurchaseValue: decimal.Zero,
	})
	require.NoError(t, err)

	assert.False(t, result.Valid())
	assert.NotEmpty(t, result.Failures[FieldPurchaseValue])
	assert.NotEmpty(t, result.Failures[FieldCustomerID])
}

func TestValidateGatewayErrorPropagates(t *testing.T) {
	storeErr := errors.New("connection refused")
	v := newTestValidator(t, businessNoon, &fakeCustomers{err: storeErr}, noOrders())

	_, err := v.Validate(context.Background(), Candidate{
		CustomerID:    1,
		PurchaseValue: decimal.NewFromInt(50),
	})
	require.ErrorIs(t, err, storeErr)
}

func TestValidateIsIdempotent(t *testing.T) {
	orders := &fakeOrders{orders: map[int64][]time.Time{1: {businessNoon.AddDate(0, 0, -10)}}}
	v := newTestValidator(t, businessNoon, registered(1), orders)

	candidate := Candidate{CustomerID: 1, PurchaseValue: decimal.NewFromInt(250)}

	first, err := v.Validate(context.Background(), candidate)
	require.NoError(t, err)
	second, err := v.Validate(context.Background(), candidate)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
