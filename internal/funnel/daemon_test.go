package funnel_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-labs/lead-funnel/internal/funnel"
	"github.com/lumina-labs/lead-funnel/internal/mocks"
)

func defaultDaemonConfig() funnel.DaemonConfig {
	return funnel.DaemonConfig{
		CheckInterval:        30 * time.Minute,
		MaxErrorsBeforePause: 3,
		ErrorPause:           time.Hour,
		ShortPause:           time.Minute,
	}
}

// sleepRecorder captures the durations a daemon sleeps for while letting
// every sleep complete immediately
type sleepRecorder struct {
	mu        sync.Mutex
	durations []time.Duration
}

func (r *sleepRecorder) record(d time.Duration) <-chan time.Time {
	r.mu.Lock()
	r.durations = append(r.durations, d)
	r.mu.Unlock()
	ch := make(chan time.Time, 1)
	ch <- execNow
	return ch
}

func (r *sleepRecorder) recorded() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Duration(nil), r.durations...)
}

func newDaemonClock(ctrl *gomock.Controller, now time.Time, sleeps *sleepRecorder) *mocks.MockClock {
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()
	clock.EXPECT().After(gomock.Any()).DoAndReturn(sleeps.record).AnyTimes()
	return clock
}

func TestDaemonRunsCyclesUntilStopped(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	sleeps := &sleepRecorder{}
	clock := newDaemonClock(ctrl, execNow, sleeps)
	runner := mocks.NewMockCycleRunner(ctrl)

	cyclesDone := make(chan struct{})
	var once sync.Once
	calls := 0
	runner.EXPECT().RunCycle(gomock.Any()).DoAndReturn(func(ctx context.Context) (*funnel.CycleStats, error) {
		calls++
		if calls >= 2 {
			once.Do(func() { close(cyclesDone) })
		}
		return &funnel.CycleStats{CycleID: "01TEST"}, nil
	}).MinTimes(2)

	d := funnel.NewDaemon(defaultDaemonConfig(), runner, clock)

	startErr := make(chan error, 1)
	go func() {
		startErr <- d.Start(context.Background())
	}()

	select {
	case <-cyclesDone:
	case <-time.After(5 * time.Second):
		t.Fatal("daemon never completed two cycles")
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Stop(stopCtx))
	require.NoError(t, <-startErr)

	// Successful cycles sleep the check interval
	assert.Contains(t, sleeps.recorded(), 30*time.Minute)
}

func TestDaemonLongPauseAfterRepeatedErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	sleeps := &sleepRecorder{}
	clock := newDaemonClock(ctrl, execNow, sleeps)
	runner := mocks.NewMockCycleRunner(ctrl)

	config := defaultDaemonConfig()
	config.MaxErrorsBeforePause = 2

	pauseTaken := make(chan struct{})
	var once sync.Once
	calls := 0
	runner.EXPECT().RunCycle(gomock.Any()).DoAndReturn(func(ctx context.Context) (*funnel.CycleStats, error) {
		calls++
		if calls <= 2 {
			return nil, assert.AnError
		}
		once.Do(func() { close(pauseTaken) })
		return &funnel.CycleStats{CycleID: "01TEST"}, nil
	}).MinTimes(3)

	d := funnel.NewDaemon(config, runner, clock)

	startErr := make(chan error, 1)
	go func() {
		startErr <- d.Start(context.Background())
	}()

	select {
	case <-pauseTaken:
	case <-time.After(5 * time.Second):
		t.Fatal("daemon never recovered from error pause")
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Stop(stopCtx))
	require.NoError(t, <-startErr)

	recorded := sleeps.recorded()
	// First failure: short pause. Second failure hits the threshold: long pause.
	assert.Contains(t, recorded, time.Minute)
	assert.Contains(t, recorded, time.Hour)
}

func TestDaemonIdlesOutsideActiveHours(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	sleeps := &sleepRecorder{}
	// Noon, but the window is 22:00 to 06:00
	clock := newDaemonClock(ctrl, execNow, sleeps)
	runner := mocks.NewMockCycleRunner(ctrl)
	// RunCycle must never fire outside the window

	config := defaultDaemonConfig()
	config.ActiveHoursStart = 22
	config.ActiveHoursEnd = 6

	d := funnel.NewDaemon(config, runner, clock)

	startErr := make(chan error, 1)
	go func() {
		startErr <- d.Start(context.Background())
	}()

	// Let the loop idle through a few active-hours checks
	deadline := time.After(5 * time.Second)
	for len(sleeps.recorded()) < 3 {
		select {
		case <-deadline:
			t.Fatal("daemon never idled")
		case <-time.After(10 * time.Millisecond):
		}
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Stop(stopCtx))
	require.NoError(t, <-startErr)
}

func TestDaemonStartTwiceFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	sleeps := &sleepRecorder{}
	clock := newDaemonClock(ctrl, execNow, sleeps)
	runner := mocks.NewMockCycleRunner(ctrl)

	started := make(chan struct{})
	var once sync.Once
	runner.EXPECT().RunCycle(gomock.Any()).DoAndReturn(func(ctx context.Context) (*funnel.CycleStats, error) {
		once.Do(func() { close(started) })
		return &funnel.CycleStats{CycleID: "01TEST"}, nil
	}).AnyTimes()

	d := funnel.NewDaemon(defaultDaemonConfig(), runner, clock)

	go func() {
		_ = d.Start(context.Background())
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("daemon never started")
	}

	err := d.Start(context.Background())
	assert.ErrorContains(t, err, "already running")

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Stop(stopCtx))
}

func TestWithinActiveHours(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2026, 3, 10, hour, 30, 0, 0, time.UTC)
	}

	tests := []struct {
		name       string
		start, end int
		hour       int
		want       bool
	}{
		{name: "always active", start: 0, end: 0, hour: 3, want: true},
		{name: "inside simple window", start: 9, end: 17, hour: 12, want: true},
		{name: "before simple window", start: 9, end: 17, hour: 8, want: false},
		{name: "at window end", start: 9, end: 17, hour: 17, want: false},
		{name: "wrapping window late evening", start: 22, end: 6, hour: 23, want: true},
		{name: "wrapping window early morning", start: 22, end: 6, hour: 3, want: true},
		{name: "wrapping window midday", start: 22, end: 6, hour: 12, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := funnel.DaemonConfig{
				ActiveHoursStart: tt.start,
				ActiveHoursEnd:   tt.end,
			}
			assert.Equal(t, tt.want, funnel.WithinActiveHours(config, at(tt.hour)))
		})
	}
}
