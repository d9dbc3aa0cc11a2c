package bench

import (
	"fmt"
	"time"
)

// Config holds the immutable parameters for a single run.
type Config struct {
	BrokerHost       string
	BrokerPort       int
	NumberOfClients  int
	NumberOfMessages int
	MessageDelay     time.Duration // pacing delay after each drained batch
	Topic            string
	QoS              byte
	CleanSession     bool
	Username         string
	Password         string

	LogLevel  string // debug|info|warn|error
	LogFormat string // text|json
}

// DefaultConfig returns the stock run parameters.
func DefaultConfig() Config {
	return Config{
		BrokerHost:       "localhost",
		BrokerPort:       1883,
		NumberOfClients:  100,
		NumberOfMessages: 1000,
		MessageDelay:     10 * time.Millisecond,
		Topic:            "loadtest",
		QoS:              1,
		CleanSession:     true,
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// BrokerURL returns the broker address in the form the MQTT client expects.
func (c Config) BrokerURL() string {
	return fmt.Sprintf("tcp://%s:%d", c.BrokerHost, c.BrokerPort)
}
