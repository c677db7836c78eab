package signals

import (
	"reflect"
	"sync"

	"github.com/krew-solutions/ascetic-rx-go/asceticrx/disposable"
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/observable"
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/subject"
)

type attachment struct {
	id           any
	subscription disposable.Disposable
}

// SignalImp is a callback-style facade over a publish subject: each
// attached observer is one subject subscription, keyed by observer id.
type SignalImp[E any] struct {
	subject     *subject.PublishSubjectImp[E]
	mu          sync.Mutex
	attachments []attachment
}

func NewSignal[E any](opts ...subject.Option) *SignalImp[E] {
	return &SignalImp[E]{subject: subject.NewPublishSubject[E](opts...)}
}

func (s *SignalImp[E]) Attach(observer Observer[E], observerID ...any) disposable.Disposable {
	id := resolveID(observer, observerID)
	detach := disposable.NewDisposable(func() {
		s.Detach(observer, id)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.attachments {
		if a.id == id {
			return detach
		}
	}
	sub := s.subject.Subscribe(observable.NewCallbacks[E](observer, nil, nil))
	s.attachments = append(s.attachments, attachment{id: id, subscription: sub})
	return detach
}

func (s *SignalImp[E]) Detach(observer Observer[E], observerID ...any) {
	id := resolveID(observer, observerID)

	s.mu.Lock()
	var found disposable.Disposable
	for i, a := range s.attachments {
		if a.id == id {
			found = a.subscription
			s.attachments = append(s.attachments[:i:i], s.attachments[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	if found != nil {
		found.Dispose()
	}
}

func (s *SignalImp[E]) Notify(event E) {
	s.subject.OnNext(event)
}

// AsObservable exposes the underlying subject for observers that need the
// full event protocol.
func (s *SignalImp[E]) AsObservable() observable.Observable[E] {
	return s.subject
}

func resolveID[E any](observer Observer[E], observerID []any) any {
	if len(observerID) > 0 {
		return observerID[0]
	}
	return makeID(observer)
}

func makeID[E any](observer Observer[E]) uintptr {
	return reflect.ValueOf(observer).Pointer()
}
