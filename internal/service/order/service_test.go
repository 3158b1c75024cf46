package order

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bazaar-dev/bazaar/internal/config"
	"github.com/bazaar-dev/bazaar/internal/entity"
	"github.com/bazaar-dev/bazaar/internal/pagination"
	"github.com/bazaar-dev/bazaar/internal/payment"
	"github.com/bazaar-dev/bazaar/internal/service/purchase"
	"github.com/bazaar-dev/bazaar/pkg/errorbank"
)

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time { return f.now }

type fakeStore struct {
	created []*entity.Order
	nextID  int64
}

func (s *fakeStore) Create(_ context.Context, order *entity.Order) error {
	s.nextID++
	order.ID = s.nextID
	s.created = append(s.created, order)
	return nil
}

func (s *fakeStore) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	for _, order := range s.created {
		if order.ID == id {
			return order, nil
		}
	}
	return nil, errNotFound
}

func (s *fakeStore) List(_ context.Context, page, pageSize int) (pagination.Page[entity.Order], error) {
	page, pageSize = pagination.Clamp(page, pageSize)
	items := make([]entity.Order, 0, len(s.created))
	for _, order := range s.created {
		items = append(items, *order)
	}
	return pagination.Page[entity.Order]{Items: items, Page: page, PageSize: pageSize, TotalCount: len(items)}, nil
}

var errNotFound = assert.AnError

type fakeEligibility struct {
	result purchase.Result
	err    error
}

func (f *fakeEligibility) Validate(context.Context, purchase.Candidate) (purchase.Result, error) {
	return f.result, f.err
}

type recordingStrategy struct {
	method    string
	processed int
}

func (s *recordingStrategy) Method() string { return s.method }

func (s *recordingStrategy) Process(context.Context, decimal.Decimal, int64) error {
	s.processed++
	return nil
}

func newTestService(store *fakeStore, eligibility Eligibility, strategy *recordingStrategy) *Service {
	return NewService(Params{
		Store:       store,
		Eligibility: eligibility,
		Payments:    payment.NewFactory([]payment.Strategy{strategy}),
		Clock:       fixedClock{now: time.Date(2026, time.March, 2, 15, 0, 0, 0, time.UTC)},
		Config:      config.Config{},
		Logger:      zap.NewNop(),
	})
}

func TestPlaceCommitsAfterEligibilityAndPayment(t *testing.T) {
	store := &fakeStore{}
	strategy := &recordingStrategy{method: "pix"}
	svc := newTestService(store, &fakeEligibility{result: purchase.Result{}}, strategy)

	order, err := svc.Place(context.Background(), "pix", decimal.NewFromInt(50), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, strategy.processed)
	require.Len(t, store.created, 1)
	assert.Equal(t, int64(1), order.CustomerID)
	assert.True(t, decimal.NewFromInt(50).Equal(order.Value))
	assert.Equal(t, time.Date(2026, time.March, 2, 15, 0, 0, 0, time.UTC), order.OrderDate)
}

func TestPlaceRejectsIneligiblePurchaseWithoutSideEffects(t *testing.T) {
	store := &fakeStore{}
	strategy := &recordingStrategy{method: "pix"}
	ineligible := &fakeEligibility{result: purchase.Result{
		Failures: map[string][]string{"customerId": {"a customer may place only one purchase per month"}},
	}}
	svc := newTestService(store, ineligible, strategy)

	_, err := svc.Place(context.Background(), "pix", decimal.NewFromInt(50), 1)
	require.Error(t, err)

	appErr := errorbank.From(err)
	assert.Equal(t, errorbank.KindUnprocessableEntity, appErr.Kind())
	assert.Contains(t, appErr.Details(), "failures")
	assert.Empty(t, store.created, "no order may be written for a rejected purchase")
	assert.Zero(t, strategy.processed, "no payment may run for a rejected purchase")
}

func TestPlaceUnknownPaymentMethodFailsBeforePersisting(t *testing.T) {
	store := &fakeStore{}
	strategy := &recordingStrategy{method: "pix"}
	svc := newTestService(store, &fakeEligibility{result: purchase.Result{}}, strategy)

	_, err := svc.Place(context.Background(), "barter", decimal.NewFromInt(50), 1)
	require.Error(t, err)

	assert.Equal(t, errorbank.KindBadRequest, errorbank.From(err).Kind())
	assert.Empty(t, store.created)
}

func TestListReturnsPagedOrders(t *testing.T) {
	store := &fakeStore{}
	strategy := &recordingStrategy{method: "pix"}
	svc := newTestService(store, &fakeEligibility{result: purchase.Result{}}, strategy)

	_, err := svc.Place(context.Background(), "pix", decimal.NewFromInt(10), 1)
	require.NoError(t, err)

	page, err := svc.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalCount)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, pagination.DefaultPageSize, page.PageSize)
}
