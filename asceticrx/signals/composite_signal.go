package signals

import (
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/disposable"
)

type CompositeSignalImp[E any] struct {
	delegates []Signal[E]
}

func NewCompositeSignal[E any](delegates ...Signal[E]) *CompositeSignalImp[E] {
	return &CompositeSignalImp[E]{delegates: delegates}
}

// Attach attaches observer to every delegate; the returned Disposable
// detaches it from all of them.
func (s *CompositeSignalImp[E]) Attach(observer Observer[E], observerID ...any) disposable.Disposable {
	group := disposable.NewCompositeDisposable()
	for _, delegate := range s.delegates {
		group.Add(delegate.Attach(observer, observerID...))
	}
	return group
}

func (s *CompositeSignalImp[E]) Detach(observer Observer[E], observerID ...any) {
	for _, delegate := range s.delegates {
		delegate.Detach(observer, observerID...)
	}
}

func (s *CompositeSignalImp[E]) Notify(event E) {
	for _, delegate := range s.delegates {
		delegate.Notify(event)
	}
}
