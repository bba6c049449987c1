// Package events lets aggregates record domain events and hands them to a
// publisher once the aggregate has been persisted.
package events

// EventsAware is implemented by aggregates that record events.
// PullEvents returns the recorded events and forgets them.
type EventsAware interface {
	PullEvents() []any
}

// Recorder is embedded by value in aggregates to satisfy EventsAware.
// It is not safe for concurrent use.
type Recorder struct {
	events []any
}

// Record appends an event.
func (r *Recorder) Record(event any) {
	r.events = append(r.events, event)
}

// PullEvents returns the recorded events in order and empties the recorder.
// A second call without new records returns nil.
func (r *Recorder) PullEvents() []any {
	out := r.events
	r.events = nil
	return out
}

// Pending reports how many events wait to be pulled.
func (r *Recorder) Pending() int {
	return len(r.events)
}
