package broker

import "context"

// Session is a connected handle to the broker. Implementations must be safe
// for concurrent Publish calls.
type Session interface {
	ID() string
	Publish(ctx context.Context, topic string, qos byte, payload []byte) error
	Disconnect()
}

// Options carries everything needed to establish a single session.
type Options struct {
	BrokerURL    string
	ClientID     string
	CleanSession bool
	Username     string
	Password     string
}

// Factory produces connected sessions.
type Factory interface {
	Connect(ctx context.Context, opts Options) (Session, error)
}
