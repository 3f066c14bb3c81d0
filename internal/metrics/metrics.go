// Package metrics provides request-scoped latency and token accounting
// for LLM completion calls. A Collector lives for exactly one pipeline
// run and is never shared across requests.
package metrics

import (
	"math"
	"sync"
)

// CallMetric records the cost of a single completion call.
type CallMetric struct {
	LatencySeconds float64 `json:"latency_seconds"`
	TokensUsed     int     `json:"tokens_used"`
}

// Summary aggregates all recorded call metrics for one pipeline run.
// Totals are sums over recorded calls, not wall-clock time: concurrent
// calls contribute their individual durations.
type Summary struct {
	TotalTokens   int     `json:"total_tokens"`
	TotalLatency  float64 `json:"total_latency"`
	CallCount     int     `json:"call_count"`
	AvgLatency    float64 `json:"avg_latency_per_call"`
}

// Collector accumulates CallMetrics for a single pipeline run.
// It is safe for concurrent use; the draft stage records from
// multiple goroutines.
type Collector struct {
	mu    sync.Mutex
	calls []CallMetric
}

// NewCollector creates an empty run-scoped collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Record appends one call metric.
func (c *Collector) Record(m CallMetric) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, m)
}

// Summary recomputes the aggregate from all recorded calls.
// The average is 0 when no calls were recorded.
func (c *Collector) Summary() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Summary{CallCount: len(c.calls)}
	for _, m := range c.calls {
		s.TotalTokens += m.TokensUsed
		s.TotalLatency += m.LatencySeconds
	}
	if s.CallCount > 0 {
		s.AvgLatency = s.TotalLatency / float64(s.CallCount)
	}
	s.TotalLatency = round3(s.TotalLatency)
	s.AvgLatency = round3(s.AvgLatency)
	return s
}

// round3 rounds to millisecond precision for stable JSON output.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
