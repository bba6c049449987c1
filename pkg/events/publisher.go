package events

import "context"

// Publisher dispatches recorded events.
type Publisher interface {
	// Publish pulls events from every aggregate and dispatches them.
	Publish(ctx context.Context, aggregates ...EventsAware) error
	// PublishEvent dispatches events directly.
	PublishEvent(ctx context.Context, events ...any) error
}

// Named events report their own name for logs and metrics.
// Other events are named after their Go type.
type Named interface {
	EventName() string
}

// NullPublisher drains aggregates and drops their events.
type NullPublisher struct{}

var _ Publisher = NullPublisher{}

func (NullPublisher) Publish(_ context.Context, aggregates ...EventsAware) error {
	for _, a := range aggregates {
		if a != nil {
			a.PullEvents()
		}
	}
	return nil
}

func (NullPublisher) PublishEvent(context.Context, ...any) error {
	return nil
}
