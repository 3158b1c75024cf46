package number

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	numberrepo "github.com/bazaar-dev/bazaar/internal/repository/number"
	"github.com/bazaar-dev/bazaar/pkg/errorbank"
)

// memoryStore mimics the unique index: the first insert of a value wins,
// later ones collide.
type memoryStore struct {
	mu    sync.Mutex
	taken map[int]bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{taken: make(map[int]bool)}
}

func (s *memoryStore) Insert(_ context.Context, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.taken[value] {
		return numberrepo.ErrValueTaken
	}
	s.taken[value] = true
	return nil
}

type failingStore struct {
	err   error
	calls int
}

func (s *failingStore) Insert(context.Context, int) error {
	s.calls++
	return s.err
}

func TestAllocateReturnsValueInRange(t *testing.T) {
	allocator := NewAllocator(newMemoryStore(), 100, 100, zap.NewNop())

	value, err := allocator.Allocate(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, value, 0)
	assert.Less(t, value, 100)
}

func TestAllocateConcurrentCallersGetDistinctValues(t *testing.T) {
	store := newMemoryStore()
	allocator := NewAllocator(store, 100, 100, zap.NewNop())

	const callers = 32
	values := make(chan int, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := allocator.Allocate(context.Background())
			assert.NoError(t, err)
			values <- value
		}()
	}
	wg.Wait()
	close(values)

	seen := make(map[int]bool)
	for value := range values {
		assert.False(t, seen[value], "value %d allocated twice", value)
		seen[value] = true
	}
	assert.Len(t, seen, callers)
}

func TestAllocateExhaustedRangeReturnsConflict(t *testing.T) {
	store := newMemoryStore()
	for i := 0; i < 100; i++ {
		store.taken[i] = true
	}
	allocator := NewAllocator(store, 100, 100, zap.NewNop())

	_, err := allocator.Allocate(context.Background())
	require.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, errorbank.KindConflict, errorbank.From(err).Kind())
}

func TestAllocateStorageErrorAbortsWithoutRetry(t *testing.T) {
	store := &failingStore{err: errors.New("connection reset")}
	allocator := NewAllocator(store, 100, 100, zap.NewNop())

	_, err := allocator.Allocate(context.Background())
	require.Error(t, err)
	assert.Equal(t, errorbank.KindInternal, errorbank.From(err).Kind())
	assert.Equal(t, 1, store.calls, "non-uniqueness errors must not be retried")
}

func TestAllocateHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	allocator := NewAllocator(newMemoryStore(), 100, 100, zap.NewNop())

	_, err := allocator.Allocate(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestAllocateStopsRetryingOnceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	store := &cancellingStore{cancel: cancel, calls: &calls}
	allocator := NewAllocator(store, 100, 100, zap.NewNop())

	_, err := allocator.Allocate(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls, "no further inserts after the signal fires")
}

// cancellingStore cancels the caller's context during the first insert and
// reports a collision, forcing the retry path to observe the cancellation.
type cancellingStore struct {
	cancel context.CancelFunc
	calls  *int
}

func (s *cancellingStore) Insert(context.Context, int) error {
	*s.calls++
	s.cancel()
	return numberrepo.ErrValueTaken
}
