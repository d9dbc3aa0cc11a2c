package stats

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Reporter prints interval throughput while the load phase runs.
type Reporter struct {
	collector *Collector
	interval  time.Duration
	Out       io.Writer

	stop chan struct{}
	done chan struct{}
}

func NewReporter(collector *Collector, interval time.Duration) *Reporter {
	return &Reporter{
		collector: collector,
		interval:  interval,
		Out:       os.Stdout,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start begins periodic sampling. Each tick prints the successful-publish
// delta since the previous tick plus the running totals. The first tick's
// baseline is zero.
func (r *Reporter) Start() {
	go func() {
		defer close(r.done)

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		var last uint64
		for {
			select {
			case <-r.stop:
				return
			case <-ticker.C:
				ok := r.collector.Successful()
				failed := r.collector.Failed()
				fmt.Fprintf(r.Out, "%d msg/s | total: %d ok, %d failed\n", ok-last, ok, failed)
				last = ok
			}
		}
	}()
}

// Stop halts sampling and joins the reporter goroutine, so no tick can race a
// later read of the collector. Call exactly once, after Start.
func (r *Reporter) Stop() {
	close(r.stop)
	<-r.done
}
