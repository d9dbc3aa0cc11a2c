package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "localhost", cfg.BrokerHost)
	assert.Equal(t, 1883, cfg.BrokerPort)
	assert.Equal(t, 100, cfg.NumberOfClients)
	assert.Equal(t, 1000, cfg.NumberOfMessages)
	assert.Equal(t, 10*time.Millisecond, cfg.MessageDelay)
	assert.Equal(t, "loadtest", cfg.Topic)
	assert.Equal(t, byte(1), cfg.QoS)
	assert.True(t, cfg.CleanSession)
	assert.Empty(t, cfg.Username)
	assert.Empty(t, cfg.Password)
}

func TestBrokerURL(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "tcp://localhost:1883", cfg.BrokerURL())
}
