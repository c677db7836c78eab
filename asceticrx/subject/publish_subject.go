package subject

import (
	"slices"
	"sync"
	"weak"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/krew-solutions/ascetic-rx-go/asceticrx/disposable"
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/observable"
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/option"
)

type entry[E any] struct {
	key      subscriptionKey
	observer *observable.AnonymousObserver[E]
}

// PublishSubjectImp is a hot multicast Subject: events go to the observers
// subscribed when the event is emitted, nothing is replayed.
//
// All methods are safe for concurrent use. Observers are called
// synchronously by On, outside of any lock, so they may subscribe, dispose
// or emit from inside their handlers.
type PublishSubjectImp[E any] struct {
	mu sync.RWMutex
	// entries is copy-on-write: On iterates a snapshot while Subscribe and
	// unsubscribe install a new slice.
	entries  []entry[E]
	terminal option.Option[observable.Event[E]]
	seq      atomic.Uint64
	cfg      config
	log      zerolog.Logger
}

var _ Subject[int] = (*PublishSubjectImp[int])(nil)

func NewPublishSubject[E any](opts ...Option) *PublishSubjectImp[E] {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &PublishSubjectImp[E]{
		cfg: cfg,
		log: cfg.logger.With().Str("component", "publish_subject").Logger(),
	}
}

// Subscribe registers observer behind its own stop guard and returns the
// Disposable that removes this registration only.
func (s *PublishSubjectImp[E]) Subscribe(observer observable.Observer[E]) disposable.Disposable {
	guarded := observable.Guard(observer)
	key := subscriptionKey{id: s.cfg.keys(), seq: s.seq.Inc()}

	s.mu.Lock()
	if stop, ok := s.terminal.Get(); ok {
		s.mu.Unlock()
		s.log.Debug().Str("key", key.id).Stringer("event", stop).Msg("replaying stop event to late observer")
		guarded.On(stop)
		return disposable.Empty()
	}
	entries := make([]entry[E], len(s.entries), len(s.entries)+1)
	copy(entries, s.entries)
	s.entries = append(entries, entry[E]{key: key, observer: guarded})
	count := len(s.entries)
	s.mu.Unlock()

	s.log.Debug().Str("key", key.id).Int("observers", count).Msg("observer subscribed")
	return subscription[E]{ref: weak.Make(s), key: key}
}

func (s *PublishSubjectImp[E]) unsubscribe(key subscriptionKey) {
	s.mu.Lock()
	idx := slices.IndexFunc(s.entries, func(e entry[E]) bool {
		return e.key == key
	})
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.entries = slices.Delete(slices.Clone(s.entries), idx, idx+1)
	count := len(s.entries)
	s.mu.Unlock()

	s.log.Debug().Str("key", key.id).Int("observers", count).Msg("observer unsubscribed")
}

// On broadcasts event to every observer registered when the call starts, in
// subscription order, and returns once all of them have been called.
func (s *PublishSubjectImp[E]) On(event observable.Event[E]) {
	entries, ok := s.snapshot(event)
	if !ok {
		return
	}
	for _, e := range entries {
		e.observer.On(event)
	}
}

func (s *PublishSubjectImp[E]) snapshot(event observable.Event[E]) ([]entry[E], bool) {
	if !s.cfg.replayTerminal || !event.IsStopEvent() {
		s.mu.RLock()
		defer s.mu.RUnlock()
		if s.terminal.IsSome() {
			return nil, false
		}
		return s.entries, true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.terminal.IsSome() {
		s.log.Warn().Stringer("event", event).Msg("stop event after termination dropped")
		return nil, false
	}
	s.terminal = option.Some(event)
	return s.entries, true
}

func (s *PublishSubjectImp[E]) OnNext(value E) {
	s.On(observable.Next(value))
}

func (s *PublishSubjectImp[E]) OnError(err error) {
	s.On(observable.Error[E](err))
}

func (s *PublishSubjectImp[E]) OnCompleted() {
	s.On(observable.Completed[E]())
}

// AsObserver returns the subject itself, typed as an Observer.
func (s *PublishSubjectImp[E]) AsObserver() observable.Observer[E] {
	return s
}

// Len returns the number of live subscriptions.
func (s *PublishSubjectImp[E]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
