// Package monitoring adapts MetricsCollector/AlertManager
// to this engine's domain: counters for statements executed, failed,
// and total time spent in db_exec, plus tombstone-ratio alerting
// (§4.15).
package monitoring

import (
	"sync/atomic"
	"time"
)

// MetricsCollector tracks exec-level counters. All fields are
// accessed atomically so a single collector may be shared across
// sequential db_exec calls without a mutex.
type MetricsCollector struct {
	executed int64
	failed   int64
	totalNs  int64
}

// NewMetricsCollector creates a zeroed collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{}
}

// RecordExec updates the collector for one completed db_exec call.
func (m *MetricsCollector) RecordExec(ok bool, d time.Duration) {
	atomic.AddInt64(&m.executed, 1)
	if !ok {
		atomic.AddInt64(&m.failed, 1)
	}
	atomic.AddInt64(&m.totalNs, int64(d))
}

// Executed returns the total number of statements dispatched.
func (m *MetricsCollector) Executed() int64 { return atomic.LoadInt64(&m.executed) }

// Failed returns the number of statements that returned ok=false.
func (m *MetricsCollector) Failed() int64 { return atomic.LoadInt64(&m.failed) }

// AverageDuration returns the mean time spent per db_exec call.
func (m *MetricsCollector) AverageDuration() time.Duration {
	n := atomic.LoadInt64(&m.executed)
	if n == 0 {
		return 0
	}
	return time.Duration(atomic.LoadInt64(&m.totalNs) / n)
}

// ErrorRate returns the percentage (0-100) of calls that failed.
func (m *MetricsCollector) ErrorRate() float64 {
	n := atomic.LoadInt64(&m.executed)
	if n == 0 {
		return 0
	}
	return float64(atomic.LoadInt64(&m.failed)) / float64(n) * 100
}

// Snapshot returns every counter as a plain map, for SHOW STATUS-style
// reporting or logging.
func (m *MetricsCollector) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"executed":        m.Executed(),
		"failed":          m.Failed(),
		"error_rate_pct":  m.ErrorRate(),
		"avg_duration_ms": m.AverageDuration().Seconds() * 1000,
	}
}
