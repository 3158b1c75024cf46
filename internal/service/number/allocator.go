package number

import (
	"context"
	"errors"
	"math/rand/v2"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	numberrepo "github.com/bazaar-dev/bazaar/internal/repository/number"
	"github.com/bazaar-dev/bazaar/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/bazaar-dev/bazaar/service/number")

// ErrExhausted is returned when the attempt budget runs out before a unique
// value commits. With a budget matching the range size this is effectively
// unreachable, but it is a defined outcome rather than an unbounded loop.
var ErrExhausted = errorbank.Conflict("unable to allocate a unique number")

// Store is the persistence port the allocator draws against.
type Store interface {
	Insert(ctx context.Context, value int) error
}

// Allocator mints integers that have never been handed out before. Each
// candidate is committed with a single atomic insert; the storage-level
// unique index is the linearization point between concurrent callers, so no
// lock is taken and existence is never pre-checked.
type Allocator struct {
	store       Store
	rangeSize   int
	maxAttempts int
	logger      *zap.Logger
}

// NewAllocator builds an allocator drawing from [0, rangeSize).
func NewAllocator(store Store, rangeSize, maxAttempts int, logger *zap.Logger) *Allocator {
	if rangeSize <= 0 {
		rangeSize = 100
	}
	if maxAttempts <= 0 {
		maxAttempts = 100
	}
	return &Allocator{
		store:       store,
		rangeSize:   rangeSize,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// Allocate returns a uniformly drawn value that is now durably committed as
// taken. A uniqueness collision discards the candidate and draws afresh; any
// other storage error aborts immediately without retry.
func (a *Allocator) Allocate(ctx context.Context) (int, error) {
	ctx, span := serviceTracer.Start(ctx, "NumberAllocator.Allocate")
	defer span.End()

	for attempt := 0; attempt < a.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, "cancelled")
			return 0, err
		}

		candidate := rand.IntN(a.rangeSize)
		err := a.store.Insert(ctx, candidate)
		if err == nil {
			span.SetAttributes(attribute.Int("number.value", candidate), attribute.Int("number.attempts", attempt+1))
			return candidate, nil
		}
		if errors.Is(err, numberrepo.ErrValueTaken) {
			continue
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			span.SetStatus(codes.Error, "cancelled")
			return 0, err
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "storage error")
		return 0, errorbank.Internal("failed to allocate number", errorbank.WithCause(err))
	}

	if a.logger != nil {
		a.logger.Warn("number allocation exhausted attempt budget",
			zap.Int("range", a.rangeSize),
			zap.Int("attempts", a.maxAttempts),
		)
	}
	span.SetStatus(codes.Error, "attempts exhausted")
	return 0, ErrExhausted
}
