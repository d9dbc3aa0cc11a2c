package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"mqttblast/internal/banner"
	"mqttblast/internal/bench"
	"mqttblast/internal/broker"
)

// Start runs a complete headless load test with the given configuration.
func Start(cfg bench.Config) {
	setupLogging(cfg)

	fmt.Println(banner.GetString())
	printHeader(cfg)

	// Ctrl-C aborts the run; in-flight attempts are abandoned, the sessions
	// already established still get disconnected.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	_, report := bench.Run(ctx, broker.NewPahoFactory(), cfg)
	fmt.Print(report)
}

func setupLogging(cfg bench.Config) {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}

func printHeader(cfg bench.Config) {
	fmt.Printf("\n🚀 STARTING MQTT LOAD TEST\n")
	fmt.Printf("======================================================================\n")
	fmt.Printf("Broker       : %s\n", cfg.BrokerURL())
	fmt.Printf("Clients      : %d\n", cfg.NumberOfClients)
	fmt.Printf("Messages     : %d per client\n", cfg.NumberOfMessages)
	fmt.Printf("Topic        : %s (QoS %d)\n", cfg.Topic, cfg.QoS)
	fmt.Printf("Batch Delay  : %s\n", cfg.MessageDelay)
	fmt.Printf("Clean Session: %v\n", cfg.CleanSession)
	fmt.Printf("======================================================================\n\n")
}
