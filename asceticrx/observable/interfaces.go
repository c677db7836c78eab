package observable

import (
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/disposable"
)

// Observer receives events pushed by an Observable.
type Observer[E any] interface {
	On(event Event[E])
}

// Observable accepts observers. Each Subscribe call creates an independent
// registration, even for an observer that is already subscribed, and the
// returned Disposable removes exactly that registration.
type Observable[E any] interface {
	Subscribe(observer Observer[E]) disposable.Disposable
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc[E any] func(event Event[E])

func (f ObserverFunc[E]) On(event Event[E]) {
	f(event)
}

// OnNext, OnError and OnCompleted are free functions because Go interfaces
// cannot carry default method implementations.

func OnNext[E any](o Observer[E], value E) {
	o.On(Next(value))
}

func OnError[E any](o Observer[E], err error) {
	o.On(Error[E](err))
}

func OnCompleted[E any](o Observer[E]) {
	o.On(Completed[E]())
}

// NewCallbacks builds an Observer that dispatches on the event kind.
// Nil callbacks are skipped.
func NewCallbacks[E any](onNext func(E), onError func(error), onCompleted func()) ObserverFunc[E] {
	return func(event Event[E]) {
		switch event.Kind() {
		case KindNext:
			if onNext != nil {
				onNext(event.value)
			}
		case KindError:
			if onError != nil {
				onError(event.Err())
			}
		case KindCompleted:
			if onCompleted != nil {
				onCompleted()
			}
		}
	}
}
