package bench

import (
	"context"
	"log/slog"
	"time"

	"mqttblast/internal/broker"
	"mqttblast/internal/stats"
)

const reportInterval = time.Second

// Run executes a full load test: establish sessions, generate load with the
// throughput reporter running alongside, render the final report. Every live
// session is disconnected on the way out, no matter how the run ends.
func Run(ctx context.Context, factory broker.Factory, cfg Config) (*stats.Collector, string) {
	collector := stats.NewCollector()

	sessions := EstablishAll(ctx, factory, cfg)
	defer cleanup(sessions)

	slog.Info("sessions established",
		"connected", len(sessions),
		"requested", cfg.NumberOfClients)

	reporter := stats.NewReporter(collector, reportInterval)
	reporter.Start()

	RunLoad(ctx, sessions, cfg, collector)

	// Join the reporter before reading final aggregate state, so a late tick
	// can't interleave with the summary.
	reporter.Stop()

	return collector, stats.Summarize(collector)
}

// cleanup disconnects every live session. Individual disconnect failures are
// the broker client's problem, not the run's.
func cleanup(sessions []broker.Session) {
	for _, sess := range sessions {
		sess.Disconnect()
	}
}
