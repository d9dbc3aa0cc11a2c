package stats

import (
	"fmt"
	"strings"
)

// Summarize renders the final report. Call only after the load phase has
// fixed the collector's total duration.
func Summarize(c *Collector) string {
	success := c.Successful()
	failed := c.Failed()
	total := success + failed

	seconds := c.TotalDuration().Seconds()
	perSec := 0.0
	if seconds > 0 {
		perSec = float64(total) / seconds
	}

	var b strings.Builder
	b.WriteString("\n📊 LOAD TEST RESULTS\n")
	b.WriteString("======================================================================\n")
	fmt.Fprintf(&b, "Total Messages : %d\n", total)
	fmt.Fprintf(&b, "Successful     : %d\n", success)
	fmt.Fprintf(&b, "Failed         : %d\n", failed)
	fmt.Fprintf(&b, "Average Latency: %.2f ms\n", c.AverageLatencyMs())
	fmt.Fprintf(&b, "Messages/sec   : %.2f\n", perSec)
	fmt.Fprintf(&b, "Total Duration : %.2f s\n", seconds)

	if c.Latency.Count() > 0 {
		b.WriteString("\n⏱️  LATENCY (ms) [Success Only]\n")
		fmt.Fprintf(&b, "   P50 : %.2f\n", c.PercentileMs(50))
		fmt.Fprintf(&b, "   P95 : %.2f\n", c.PercentileMs(95))
		fmt.Fprintf(&b, "   P99 : %.2f\n", c.PercentileMs(99))
		fmt.Fprintf(&b, "   Max : %.2f\n", float64(c.Latency.Max())/1000.0)
	}
	b.WriteString("======================================================================\n")
	return b.String()
}
