package clock

import (
	"fmt"
	"time"

	"go.uber.org/fx"

	"github.com/bazaar-dev/bazaar/internal/config"
)

// Clock supplies the current UTC instant. Components depending on "now" take
// it from here so tests can pin time.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

// Now returns the current instant in UTC.
func (System) Now() time.Time {
	return time.Now().UTC()
}

// Business projects UTC instants into the configured civil business zone.
// The zone is loaded by name at construction; host-local time is never used.
type Business struct {
	clock Clock
	loc   *time.Location
}

// NewBusiness builds a Business clock for the named zone.
func NewBusiness(clock Clock, zone string) (*Business, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load business time zone %q: %w", zone, err)
	}
	return &Business{clock: clock, loc: loc}, nil
}

// Now returns the current instant in UTC.
func (b *Business) Now() time.Time {
	return b.clock.Now()
}

// Local projects an instant into the business zone.
func (b *Business) Local(t time.Time) time.Time {
	return t.In(b.loc)
}

// Module wires the system clock and its business-zone projection into Fx.
var Module = fx.Options(
	fx.Provide(func() Clock { return System{} }),
	fx.Provide(func(clk Clock, cfg config.Config) (*Business, error) {
		return NewBusiness(clk, cfg.Business.Timezone)
	}),
)
