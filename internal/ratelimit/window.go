// Package ratelimit enforces per-class hourly action budgets with a sliding
// window. Unlike a token bucket, the window answers exactly how long until
// the next slot frees: the time left until the oldest recorded action ages
// out. Budgets are process-local; actions recorded before a restart are
// forgotten, which errs on the permissive side.
package ratelimit

import (
	"sync"
	"time"

	"github.com/lumina-labs/lead-funnel/internal/adapter"
	"github.com/lumina-labs/lead-funnel/internal/domain"
)

// DefaultWindow is the budget period actions are counted over
const DefaultWindow = time.Hour

// Limiter tracks recent action timestamps per class and answers whether
// another action fits the budget. Safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	clock   adapter.Clock
	window  time.Duration
	budgets map[domain.ActionClass]int
	history map[domain.ActionClass][]time.Time
}

// NewLimiter creates a limiter with the given per-class budgets over window.
// A class absent from budgets is unlimited.
func NewLimiter(clock adapter.Clock, window time.Duration, budgets map[domain.ActionClass]int) *Limiter {
	if window <= 0 {
		window = DefaultWindow
	}
	copied := make(map[domain.ActionClass]int, len(budgets))
	for class, n := range budgets {
		copied[class] = n
	}
	return &Limiter{
		clock:   clock,
		window:  window,
		budgets: copied,
		history: make(map[domain.ActionClass][]time.Time),
	}
}

// CanProceed reports whether another action of the class fits the current
// window. When it does not, wait is the exact duration until the oldest
// in-window action expires and a slot frees.
func (l *Limiter) CanProceed(class domain.ActionClass) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	budget, limited := l.budgets[class]
	if !limited {
		return true, 0
	}
	if budget <= 0 {
		// Zero budget never frees a slot
		return false, l.window
	}

	now := l.clock.Now()
	recent := l.prune(class, now)
	if len(recent) < budget {
		return true, 0
	}
	return false, recent[0].Add(l.window).Sub(now)
}

// Record counts one performed action of the class against the window.
// Callers record only actions that actually ran.
func (l *Limiter) Record(class domain.ActionClass) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	l.history[class] = append(l.prune(class, now), now)
}

// Used returns how many actions of the class are inside the current window
func (l *Limiter) Used(class domain.ActionClass) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.prune(class, l.clock.Now()))
}

// prune drops entries older than the window and stores the trimmed slice.
// Caller must hold the mutex. Entries are appended in time order, so the
// slice stays sorted and the cutoff is a prefix.
func (l *Limiter) prune(class domain.ActionClass, now time.Time) []time.Time {
	entries := l.history[class]
	cutoff := now.Add(-l.window)
	idx := 0
	for idx < len(entries) && !entries[idx].After(cutoff) {
		idx++
	}
	if idx > 0 {
		entries = append([]time.Time(nil), entries[idx:]...)
		l.history[class] = entries
	}
	return entries
}
