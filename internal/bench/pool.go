package bench

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"mqttblast/internal/broker"
)

// maxConcurrentConnects caps in-flight connection attempts so large client
// counts don't stampede the broker.
const maxConcurrentConnects = 50

// EstablishAll issues cfg.NumberOfClients connection attempts and returns the
// sessions that made it. A failed attempt is logged and skipped, so the
// returned slice may be shorter than requested, down to empty. Cancelling ctx
// abandons attempts not yet issued.
func EstablishAll(ctx context.Context, factory broker.Factory, cfg Config) []broker.Session {
	var (
		mu       sync.Mutex
		sessions []broker.Session
		wg       sync.WaitGroup
	)

	sem := semaphore.NewWeighted(maxConcurrentConnects)

	for i := 0; i < cfg.NumberOfClients; i++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			opts := connectOptions(cfg)
			sess, err := factory.Connect(ctx, opts)
			if err != nil {
				slog.Warn("connection attempt failed", "client_id", opts.ClientID, "error", err)
				return
			}

			mu.Lock()
			sessions = append(sessions, sess)
			mu.Unlock()
		}()
	}

	wg.Wait()
	return sessions
}

// connectOptions builds per-attempt options with a unique client id.
// Credentials are attached only when both username and password are set.
func connectOptions(cfg Config) broker.Options {
	opts := broker.Options{
		BrokerURL:    cfg.BrokerURL(),
		ClientID:     fmt.Sprintf("mqttblast-%s", uuid.New().String()),
		CleanSession: cfg.CleanSession,
	}
	if cfg.Username != "" && cfg.Password != "" {
		opts.Username = cfg.Username
		opts.Password = cfg.Password
	}
	return opts
}
