package testutils

import (
	"sync"

	"github.com/krew-solutions/ascetic-rx-go/asceticrx/observable"
)

// Recorder is an observer that keeps every event it receives.
// It is safe for concurrent use.
type Recorder[E any] struct {
	mu     sync.Mutex
	events []observable.Event[E]
}

var _ observable.Observer[int] = (*Recorder[int])(nil)

func NewRecorder[E any]() *Recorder[E] {
	return &Recorder[E]{}
}

func (r *Recorder[E]) On(event observable.Event[E]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *Recorder[E]) Events() []observable.Event[E] {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]observable.Event[E], len(r.events))
	copy(result, r.events)
	return result
}

// Values returns the payloads of the recorded Next events.
func (r *Recorder[E]) Values() []E {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]E, 0, len(r.events))
	for _, e := range r.events {
		if v, ok := e.Value().Get(); ok {
			result = append(result, v)
		}
	}
	return result
}

func (r *Recorder[E]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func (r *Recorder[E]) Completed() bool {
	return r.countKind(observable.KindCompleted) > 0
}

// Err returns the error of the first recorded Error event.
func (r *Recorder[E]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.Kind() == observable.KindError {
			return e.Err()
		}
	}
	return nil
}

// StopEvents returns how many Error and Completed events were recorded.
func (r *Recorder[E]) StopEvents() int {
	return r.countKind(observable.KindError) + r.countKind(observable.KindCompleted)
}

func (r *Recorder[E]) countKind(kind observable.Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind() == kind {
			n++
		}
	}
	return n
}
