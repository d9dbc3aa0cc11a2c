package broker

import (
	"context"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	connectTimeout = 10 * time.Second

	// Quiesce window passed to paho's Disconnect, in milliseconds.
	disconnectQuiesce = 250
)

// PahoFactory connects real MQTT sessions using the Eclipse Paho client.
type PahoFactory struct{}

func NewPahoFactory() *PahoFactory { return &PahoFactory{} }

func (f *PahoFactory) Connect(ctx context.Context, opts Options) (Session, error) {
	co := mqtt.NewClientOptions().
		AddBroker(opts.BrokerURL).
		SetClientID(opts.ClientID).
		SetCleanSession(opts.CleanSession).
		SetOrderMatters(false).
		SetAutoReconnect(false).
		SetConnectTimeout(connectTimeout)

	if opts.Username != "" {
		co.SetUsername(opts.Username)
		co.SetPassword(opts.Password)
	}

	client := mqtt.NewClient(co)
	if err := waitToken(ctx, client.Connect()); err != nil {
		return nil, err
	}

	return &pahoSession{id: opts.ClientID, client: client}, nil
}

type pahoSession struct {
	id     string
	client mqtt.Client
}

func (s *pahoSession) ID() string { return s.id }

func (s *pahoSession) Publish(ctx context.Context, topic string, qos byte, payload []byte) error {
	return waitToken(ctx, s.client.Publish(topic, qos, false, payload))
}

func (s *pahoSession) Disconnect() {
	s.client.Disconnect(disconnectQuiesce)
}

// waitToken blocks until the token resolves or ctx is cancelled, whichever
// comes first.
func waitToken(ctx context.Context, t mqtt.Token) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.Done():
		return t.Error()
	}
}
