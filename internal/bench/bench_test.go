package bench

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"mqttblast/internal/broker"
)

// inflightTracker records the high-water mark of concurrent calls and how
// many times the in-flight count returned to zero (one per drained batch when
// callers outpace completions).
type inflightTracker struct {
	cur    int32
	max    int32
	drains int32
}

func (t *inflightTracker) enter() {
	cur := atomic.AddInt32(&t.cur, 1)
	for {
		max := atomic.LoadInt32(&t.max)
		if cur <= max || atomic.CompareAndSwapInt32(&t.max, max, cur) {
			return
		}
	}
}

func (t *inflightTracker) exit() {
	if atomic.AddInt32(&t.cur, -1) == 0 {
		atomic.AddInt32(&t.drains, 1)
	}
}

func (t *inflightTracker) highWater() int32 {
	return atomic.LoadInt32(&t.max)
}

func (t *inflightTracker) drainCount() int32 {
	return atomic.LoadInt32(&t.drains)
}

type fakeSession struct {
	id          string
	failPublish bool
	delay       time.Duration
	tracker     *inflightTracker

	published    uint64
	disconnected atomic.Bool
}

func (s *fakeSession) ID() string { return s.id }

func (s *fakeSession) Publish(ctx context.Context, topic string, qos byte, payload []byte) error {
	if s.tracker != nil {
		s.tracker.enter()
		defer s.tracker.exit()
	}
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	atomic.AddUint64(&s.published, 1)
	if s.failPublish {
		return errors.New("publish refused")
	}
	return nil
}

func (s *fakeSession) Disconnect() {
	s.disconnected.Store(true)
}

type fakeFactory struct {
	failFirst    int
	failAll      bool
	connectDelay time.Duration
	tracker      *inflightTracker

	mu       sync.Mutex
	attempts int
	opts     []broker.Options
	sessions []*fakeSession
}

func (f *fakeFactory) Connect(ctx context.Context, opts broker.Options) (broker.Session, error) {
	if f.tracker != nil {
		f.tracker.enter()
		defer f.tracker.exit()
	}
	if f.connectDelay > 0 {
		time.Sleep(f.connectDelay)
	}

	f.mu.Lock()
	f.attempts++
	n := f.attempts
	f.opts = append(f.opts, opts)
	f.mu.Unlock()

	if f.failAll || n <= f.failFirst {
		return nil, errors.New("connection refused")
	}

	sess := &fakeSession{id: opts.ClientID}
	f.mu.Lock()
	f.sessions = append(f.sessions, sess)
	f.mu.Unlock()
	return sess, nil
}

func (f *fakeFactory) attemptCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attempts
}
