package bench

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"mqttblast/internal/broker"
	"mqttblast/internal/stats"
)

// batchThreshold is the soft cap on in-flight publish attempts. Once this
// many are outstanding the generator drains the whole batch before issuing
// more.
const batchThreshold = 1000

// payload is the message body published on every attempt.
type payload struct {
	Timestamp time.Time `json:"timestamp"`
	Value     int       `json:"value"`
}

func newPayload() ([]byte, error) {
	return json.Marshal(payload{
		Timestamp: time.Now(),
		Value:     rand.Intn(100),
	})
}

// RunLoad drives cfg.NumberOfMessages publish iterations across every live
// session, recording each outcome into collector. Attempts are dispatched
// concurrently with no per-session ordering. It returns the elapsed
// wall-clock time of the load phase, which is also fixed on the collector.
func RunLoad(ctx context.Context, sessions []broker.Session, cfg Config, collector *stats.Collector) time.Duration {
	start := time.Now()

	var (
		wg          sync.WaitGroup
		outstanding int
	)

loop:
	for i := 0; i < cfg.NumberOfMessages; i++ {
		for _, sess := range sessions {
			if ctx.Err() != nil {
				break loop
			}

			wg.Add(1)
			outstanding++
			go publishOne(ctx, sess, cfg, collector, &wg)

			if outstanding >= batchThreshold {
				wg.Wait() // drain barrier
				outstanding = 0
				if cfg.MessageDelay > 0 && !sleepCtx(ctx, cfg.MessageDelay) {
					break loop
				}
			}
		}
	}

	wg.Wait()

	elapsed := time.Since(start)
	collector.SetTotalDuration(elapsed)
	return elapsed
}

func publishOne(ctx context.Context, sess broker.Session, cfg Config, collector *stats.Collector, wg *sync.WaitGroup) {
	defer wg.Done()

	body, err := newPayload()
	if err != nil {
		collector.RecordFailure()
		return
	}

	issued := time.Now()
	err = sess.Publish(ctx, cfg.Topic, cfg.QoS, body)
	switch {
	case err == nil:
		collector.RecordSuccess(time.Since(issued))
	case ctx.Err() != nil:
		// Abandoned attempt: neither success nor failure.
	default:
		collector.RecordFailure()
	}
}

// sleepCtx pauses for d, returning false if ctx was cancelled first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
