package turn

import (
	"sync"

	"github.com/mcoot/pig-go/internal/model"
)

// Observer receives game and turn events for display or recording.
// Observe must not block for long; the game loop waits on it.
type Observer interface {
	Observe(event model.Event)
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(event model.Event)

// Observe calls f(event)
func (f ObserverFunc) Observe(event model.Event) {
	f(event)
}

// NopObserver discards all events
type NopObserver struct{}

func (NopObserver) Observe(model.Event) {}

// Observers fans an event out to every non-nil observer in order
func Observers(observers ...Observer) Observer {
	var active []Observer
	for _, o := range observers {
		if o != nil {
			active = append(active, o)
		}
	}
	switch len(active) {
	case 0:
		return NopObserver{}
	case 1:
		return active[0]
	}
	return ObserverFunc(func(event model.Event) {
		for _, o := range active {
			o.Observe(event)
		}
	})
}

// Recorder is a concurrency-safe in-memory event collector
type Recorder struct {
	mu     sync.Mutex
	events []model.Event
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Observe appends the event
func (r *Recorder) Observe(event model.Event) {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
}

// Events returns a copy of all recorded events
func (r *Recorder) Events() []model.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Event, len(r.events))
	copy(out, r.events)
	return out
}

// OfType returns the recorded events with the given type
func (r *Recorder) OfType(t model.EventType) []model.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
