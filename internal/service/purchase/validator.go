package purchase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bazaar-dev/bazaar/internal/clock"
)

var serviceTracer = otel.Tracer("github.com/bazaar-dev/bazaar/service/purchase")

// Result fields used by the rule set.
const (
	FieldPurchaseValue = "purchaseValue"
	FieldCustomerID    = "customerId"
)

const (
	businessOpenHour  = 8
	businessCloseHour = 18
)

var firstPurchaseCap = decimal.NewFromInt(100)

// Candidate is a purchase awaiting an eligibility decision.
type Candidate struct {
	CustomerID    int64
	PurchaseValue decimal.Decimal
}

// Result accumulates rule failures per field. An empty result is a pass.
type Result struct {
	Failures map[string][]string `json:"failures,omitempty"`
}

// Valid reports whether every rule passed.
func (r Result) Valid() bool {
	return len(r.Failures) == 0
}

func (r *Result) add(field, message string) {
	if r.Failures == nil {
		r.Failures = make(map[string][]string)
	}
	r.Failures[field] = append(r.Failures[field], message)
}

// CustomerStore is the customer read port.
type CustomerStore interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// OrderStore is the order-history read port.
type OrderStore interface {
	HasAny(ctx context.Context, customerID int64) (bool, error)
	HasSince(ctx context.Context, customerID int64, since time.Time) (bool, error)
}

// Validator decides whether a customer may place a purchase right now. It is
// a pure function of the candidate, the order history it reads, and one
// instant captured at the top of each pass; it never writes state. History
// reads take no lock, so the monthly and first-purchase rules are advisory
// against concurrent in-flight placements.
type Validator struct {
	customers CustomerStore
	orders    OrderStore
	clock     *clock.Business
}

// NewValidator wires a Validator against its read ports and business clock.
func NewValidator(customers CustomerStore, orders OrderStore, clk *clock.Business) *Validator {
	return &Validator{
		customers: customers,
		orders:    orders,
		clock:     clk,
	}
}

// Validate evaluates every rule and reports all failures, not just the
// first. Rule failures are data; the returned error is reserved for storage
// faults and context cancellation.
func (v *Validator) Validate(ctx context.Context, candidate Candidate) (Result, error) {
	ctx, span := serviceTracer.Start(ctx, "PurchaseValidator.Validate", trace.WithAttributes(
		attribute.Int64("customer.id", candidate.CustomerID),
		attribute.String("purchase.value", candidate.PurchaseValue.String()),
	))
	defer span.End()

	// One instant for the whole pass keeps rules consistent with each other
	// even if the wall clock advances mid-evaluation.
	now := v.clock.Now()

	var result Result

	if !candidate.PurchaseValue.IsPositive() {
		result.add(FieldPurchaseValue, "purchase value must be greater than zero")
	}

	if candidate.CustomerID > 0 {
		if err := v.checkCustomerRules(ctx, candidate, now, &result); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "gateway error")
			return Result{}, err
		}
	} else {
		result.add(FieldCustomerID, "customer id must be greater than zero")
	}

	if !v.duringBusinessHours(now) {
		result.add(FieldCustomerID, "purchases are only accepted during business hours (8am to 6pm) on working days (Monday to Friday)")
	}

	span.SetAttributes(attribute.Bool("purchase.eligible", result.Valid()))
	return result, nil
}

// checkCustomerRules runs the identity-dependent rules: existence, one
// purchase per calendar month, and the first-purchase cap.
func (v *Validator) checkCustomerRules(ctx context.Context, candidate Candidate, now time.Time, result *Result) error {
	exists, err := v.customers.Exists(ctx, candidate.CustomerID)
	if err != nil {
		return fmt.Errorf("check customer exists: %w", err)
	}
	if !exists {
		result.add(FieldCustomerID, fmt.Sprintf("customer %d not found", candidate.CustomerID))
	}

	// Orders dated exactly one calendar month ago still count as recent.
	monthAgo := now.AddDate(0, -1, 0)
	recent, err := v.orders.HasSince(ctx, candidate.CustomerID, monthAgo)
	if err != nil {
		return fmt.Errorf("check recent orders: %w", err)
	}
	if recent {
		result.add(FieldCustomerID, "a customer may place only one purchase per month")
	}

	bought, err := v.orders.HasAny(ctx, candidate.CustomerID)
	if err != nil {
		return fmt.Errorf("check order history: %w", err)
	}
	if !bought && candidate.PurchaseValue.GreaterThan(firstPurchaseCap) {
		result.add(FieldCustomerID, "a first purchase may not exceed 100.00")
	}

	return nil
}

// duringBusinessHours projects the instant into the business zone and checks
// the [08:00, 18:00] Monday-to-Friday window, endpoints inclusive.
func (v *Validator) duringBusinessHours(now time.Time) bool {
	local := v.clock.Local(now)

	switch local.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}

	seconds := local.Hour()*3600 + local.Minute()*60 + local.Second()
	return seconds >= businessOpenHour*3600 && seconds <= businessCloseHour*3600
}
