package observable

import (
	"go.uber.org/atomic"
)

// AnonymousObserver forwards events to a handler until the first stop event.
// The stop event itself is forwarded exactly once, even when several
// goroutines deliver stop events at the same time; everything after it is dropped.
type AnonymousObserver[E any] struct {
	handler func(Event[E])
	stopped atomic.Bool
}

var _ Observer[int] = (*AnonymousObserver[int])(nil)

func NewAnonymousObserver[E any](handler func(Event[E])) *AnonymousObserver[E] {
	return &AnonymousObserver[E]{handler: handler}
}

// Guard wraps observer into an AnonymousObserver. An observer that is already
// an AnonymousObserver gets a fresh wrapper anyway, so that every
// subscription owns its own stop flag.
func Guard[E any](observer Observer[E]) *AnonymousObserver[E] {
	return NewAnonymousObserver(observer.On)
}

func (o *AnonymousObserver[E]) On(event Event[E]) {
	if !event.IsStopEvent() {
		if !o.stopped.Load() {
			o.handler(event)
		}
		return
	}
	if !o.stopped.CompareAndSwap(false, true) {
		return
	}
	o.handler(event)
}

func (o *AnonymousObserver[E]) OnNext(value E) {
	o.On(Next(value))
}

func (o *AnonymousObserver[E]) OnError(err error) {
	o.On(Error[E](err))
}

func (o *AnonymousObserver[E]) OnCompleted() {
	o.On(Completed[E]())
}

func (o *AnonymousObserver[E]) IsStopped() bool {
	return o.stopped.Load()
}
