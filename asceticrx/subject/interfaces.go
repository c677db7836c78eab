package subject

import (
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/observable"
)

// Subject is both ends of a stream: observers subscribe to it like to any
// Observable, and producers push events into it like into any Observer.
// Every event is re-broadcast to the observers subscribed at that moment.
type Subject[E any] interface {
	observable.Observable[E]
	observable.Observer[E]
	AsObserver() observable.Observer[E]
}
