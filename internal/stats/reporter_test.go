package stats

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReporterStopBeforeTick(t *testing.T) {
	r := NewReporter(NewCollector(), time.Hour)
	r.Start()
	r.Stop() // must join cleanly without a single tick having fired
}

func TestReporterPrintsIntervalDelta(t *testing.T) {
	c := NewCollector()
	for i := 0; i < 5; i++ {
		c.RecordSuccess(time.Millisecond)
	}
	c.RecordFailure()
	c.RecordFailure()

	var buf bytes.Buffer
	r := NewReporter(c, 10*time.Millisecond)
	r.Out = &buf
	r.Start()
	time.Sleep(25 * time.Millisecond)
	r.Stop()

	// First tick's baseline is zero, so the whole count shows as the delta.
	assert.Contains(t, buf.String(), "5 msg/s | total: 5 ok, 2 failed")
}

func TestReporterNoTicksAfterStop(t *testing.T) {
	c := NewCollector()

	var buf bytes.Buffer
	r := NewReporter(c, 5*time.Millisecond)
	r.Out = &buf
	r.Start()
	r.Stop()

	before := buf.Len()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, before, buf.Len())
}
