package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lumina-labs/lead-funnel/internal/domain"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time                         { return c.now }
func (c *fakeClock) Since(t time.Time) time.Duration        { return c.now.Sub(t) }
func (c *fakeClock) After(d time.Duration) <-chan time.Time { return time.After(0) }

func newTestLimiter(budgets map[domain.ActionClass]int) (*Limiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	return NewLimiter(clock, time.Hour, budgets), clock
}

func TestLimiterAllowsUpToBudget(t *testing.T) {
	l, _ := newTestLimiter(map[domain.ActionClass]int{domain.ActionJoin: 3})

	for i := 0; i < 3; i++ {
		ok, wait := l.CanProceed(domain.ActionJoin)
		assert.True(t, ok)
		assert.Zero(t, wait)
		l.Record(domain.ActionJoin)
	}

	ok, wait := l.CanProceed(domain.ActionJoin)
	assert.False(t, ok)
	assert.Equal(t, time.Hour, wait)
}

func TestLimiterWaitTracksOldestEntry(t *testing.T) {
	l, clock := newTestLimiter(map[domain.ActionClass]int{domain.ActionMessage: 2})

	l.Record(domain.ActionMessage)
	clock.now = clock.now.Add(10 * time.Minute)
	l.Record(domain.ActionMessage)

	clock.now = clock.now.Add(5 * time.Minute)
	ok, wait := l.CanProceed(domain.ActionMessage)
	assert.False(t, ok)
	// Oldest entry is 15 minutes old, slot frees in 45
	assert.Equal(t, 45*time.Minute, wait)
}

func TestLimiterSlotFreesAfterWindow(t *testing.T) {
	l, clock := newTestLimiter(map[domain.ActionClass]int{domain.ActionJoin: 1})

	l.Record(domain.ActionJoin)
	ok, _ := l.CanProceed(domain.ActionJoin)
	assert.False(t, ok)

	clock.now = clock.now.Add(time.Hour + time.Second)
	ok, wait := l.CanProceed(domain.ActionJoin)
	assert.True(t, ok)
	assert.Zero(t, wait)
	assert.Equal(t, 0, l.Used(domain.ActionJoin))
}

func TestLimiterClassesAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(map[domain.ActionClass]int{
		domain.ActionJoin:    1,
		domain.ActionMessage: 1,
	})

	l.Record(domain.ActionJoin)
	ok, _ := l.CanProceed(domain.ActionJoin)
	assert.False(t, ok)

	ok, wait := l.CanProceed(domain.ActionMessage)
	assert.True(t, ok)
	assert.Zero(t, wait)
}

func TestLimiterUnknownClassIsUnlimited(t *testing.T) {
	l, _ := newTestLimiter(map[domain.ActionClass]int{domain.ActionJoin: 1})

	for i := 0; i < 100; i++ {
		ok, _ := l.CanProceed(domain.ActionMessage)
		assert.True(t, ok)
		l.Record(domain.ActionMessage)
	}
}

func TestLimiterZeroBudgetNeverProceeds(t *testing.T) {
	l, _ := newTestLimiter(map[domain.ActionClass]int{domain.ActionJoin: 0})

	ok, wait := l.CanProceed(domain.ActionJoin)
	assert.False(t, ok)
	assert.Equal(t, time.Hour, wait)
}
