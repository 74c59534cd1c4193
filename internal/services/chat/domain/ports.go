package domain

import "context"

// EventSource delivers inbound chat events. The channel closes when the
// connection ends or ctx is done
type EventSource interface {
	Events(ctx context.Context) (<-chan Event, error)
}

// Replier sends a threaded reply to the event's message
type Replier interface {
	Reply(ctx context.Context, ev Event, text string) error
}

// RunnerPort is the external port for the chat bot loop
type RunnerPort interface {
	Run(ctx context.Context, src EventSource) error
}
