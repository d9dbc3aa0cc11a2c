package stats

import (
	"sync/atomic"
	"time"
)

// Collector is the shared metrics sink for a run. Counter mutation is safe
// from any number of concurrent publishers. TotalDuration is written exactly
// once, after the load phase ends, and read only after that.
type Collector struct {
	successful uint64
	failed     uint64

	Latency *SafeHistogram

	totalDuration time.Duration
}

func NewCollector() *Collector {
	return &Collector{Latency: NewSafeHistogram()}
}

// RecordSuccess counts one successful publish and its round-trip latency.
func (c *Collector) RecordSuccess(latency time.Duration) {
	atomic.AddUint64(&c.successful, 1)
	c.Latency.Record(latency)
}

// RecordFailure counts one failed publish. Failures carry no latency sample.
func (c *Collector) RecordFailure() {
	atomic.AddUint64(&c.failed, 1)
}

func (c *Collector) Successful() uint64 {
	return atomic.LoadUint64(&c.successful)
}

func (c *Collector) Failed() uint64 {
	return atomic.LoadUint64(&c.failed)
}

// AverageLatencyMs is the mean of all recorded samples, 0 when none exist.
func (c *Collector) AverageLatencyMs() float64 {
	return c.Latency.Mean() / 1000.0
}

// PercentileMs returns the latency value at quantile q in milliseconds.
func (c *Collector) PercentileMs(q float64) float64 {
	return float64(c.Latency.ValueAtQuantile(q)) / 1000.0
}

func (c *Collector) SetTotalDuration(d time.Duration) {
	c.totalDuration = d
}

func (c *Collector) TotalDuration() time.Duration {
	return c.totalDuration
}
