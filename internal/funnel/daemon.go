package funnel

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lumina-labs/lead-funnel/internal/adapter"
	"github.com/lumina-labs/lead-funnel/internal/logger"
)

// DaemonConfig holds daemon-loop configuration
type DaemonConfig struct {
	// CheckInterval separates successful cycles
	CheckInterval time.Duration
	// ActiveHoursStart/End bound the daily window cycles may run in,
	// in local hours. Start after End wraps past midnight; equal values
	// mean always active.
	ActiveHoursStart int
	ActiveHoursEnd   int
	// MaxErrorsBeforePause triggers the long error pause after this many
	// consecutive failed cycles
	MaxErrorsBeforePause int
	// ErrorPause is the long pause after repeated failures
	ErrorPause time.Duration
	// ShortPause separates a failed cycle from its retry, and active-hours
	// rechecks while outside the window
	ShortPause time.Duration
}

// Daemon is the long-running funnel loop
type Daemon interface {
	// Start begins the daemon's main loop
	// This is a blocking call that runs until the context is canceled
	Start(ctx context.Context) error

	// Stop gracefully stops the daemon
	Stop(ctx context.Context) error

	// Name returns the daemon's name for logging and identification
	Name() string
}

type funnelDaemon struct {
	config     DaemonConfig
	controller CycleRunner
	clock      adapter.Clock
	running    atomic.Bool
	stopChan   chan struct{}
	stoppedCh  chan struct{}
}

// NewDaemon creates the funnel daemon
func NewDaemon(config DaemonConfig, controller CycleRunner, clock adapter.Clock) Daemon {
	return &funnelDaemon{
		config:     config,
		controller: controller,
		clock:      clock,
		stopChan:   make(chan struct{}),
		stoppedCh:  make(chan struct{}),
	}
}

// Name returns the daemon's name
func (d *funnelDaemon) Name() string {
	return "funnel-daemon"
}

// Start begins the daemon's main loop: run a cycle, pace, repeat. Repeated
// failing cycles trigger a long pause instead of hammering the providers.
func (d *funnelDaemon) Start(ctx context.Context) error {
	if !d.running.CompareAndSwap(false, true) {
		return fmt.Errorf("daemon already running")
	}
	defer func() {
		d.running.Store(false)
		close(d.stoppedCh)
	}()

	logger.InfoCtx(ctx, "starting funnel daemon",
		zap.Duration("check_interval", d.config.CheckInterval),
		zap.Int("active_hours_start", d.config.ActiveHoursStart),
		zap.Int("active_hours_end", d.config.ActiveHoursEnd),
	)

	consecutiveErrors := 0
	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "funnel daemon stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-d.stopChan:
			logger.InfoCtx(ctx, "funnel daemon stop requested")
			return nil
		default:
		}

		if !d.withinActiveHours(d.clock.Now()) {
			logger.InfoCtx(ctx, "outside active hours, waiting")
			if !d.sleep(ctx, d.config.ShortPause) {
				return nil
			}
			continue
		}

		stats, err := d.controller.RunCycle(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			consecutiveErrors++
			logger.ErrorCtx(ctx, err, zap.Int("consecutive_errors", consecutiveErrors))

			if consecutiveErrors >= d.config.MaxErrorsBeforePause {
				logger.WarnCtx(ctx, "too many consecutive cycle errors, taking long pause",
					zap.Int("errors", consecutiveErrors),
					zap.Duration("pause", d.config.ErrorPause))
				consecutiveErrors = 0
				if !d.sleep(ctx, d.config.ErrorPause) {
					return nil
				}
			} else if !d.sleep(ctx, d.config.ShortPause) {
				return nil
			}
			continue
		}

		consecutiveErrors = 0
		logger.InfoCtx(ctx, "cycle done, sleeping until next",
			zap.String("cycle_id", stats.CycleID),
			zap.Duration("sleep", d.config.CheckInterval))
		if !d.sleep(ctx, d.config.CheckInterval) {
			return nil
		}
	}
}

// Stop gracefully stops the daemon with timeout support
func (d *funnelDaemon) Stop(ctx context.Context) error {
	if !d.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "stopping funnel daemon")
	close(d.stopChan)

	select {
	case <-d.stoppedCh:
		logger.InfoCtx(ctx, "funnel daemon stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "funnel daemon stop interrupted by context timeout")
		return ctx.Err()
	}
}

// withinActiveHours reports whether now falls inside the configured window
func (d *funnelDaemon) withinActiveHours(now time.Time) bool {
	start, end := d.config.ActiveHoursStart, d.config.ActiveHoursEnd
	if start == end {
		return true
	}
	hour := now.Hour()
	if start < end {
		return hour >= start && hour < end
	}
	// Window wraps past midnight, e.g. 22 -> 6
	return hour >= start || hour < end
}

// sleep pauses but can be interrupted by context cancellation or Stop.
// Returns true if the sleep completed normally.
func (d *funnelDaemon) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-d.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-d.stopChan:
		return false
	}
}
