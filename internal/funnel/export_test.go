package funnel

import "time"

// WithinActiveHours exposes the daemon's active-hours gate to tests
func WithinActiveHours(config DaemonConfig, now time.Time) bool {
	d := &funnelDaemon{config: config}
	return d.withinActiveHours(now)
}
