package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time { return f.now }

func TestBusinessProjectsIntoNamedZone(t *testing.T) {
	instant := time.Date(2026, time.March, 2, 15, 0, 0, 0, time.UTC)
	business, err := NewBusiness(fixedClock{now: instant}, "America/Sao_Paulo")
	require.NoError(t, err)

	local := business.Local(business.Now())
	assert.Equal(t, 12, local.Hour())
	assert.Equal(t, time.Monday, local.Weekday())

	// The projection is the same instant, only re-zoned.
	assert.True(t, local.Equal(instant))
}

func TestNewBusinessRejectsUnknownZone(t *testing.T) {
	_, err := NewBusiness(fixedClock{}, "Atlantis/Lost_City")
	require.Error(t, err)
}

func TestSystemClockReturnsUTC(t *testing.T) {
	now := System{}.Now()
	_, offset := now.Zone()
	assert.Zero(t, offset)
}
