package subject

import (
	"weak"
)

// subscriptionKey indexes the registry. The sequence number is never
// reused, so a disposable can't remove a registration it did not create,
// even if the key generator repeats itself.
type subscriptionKey struct {
	id  string
	seq uint64
}

// subscription is the Disposable handed out by Subscribe. It references the
// subject weakly: outstanding subscriptions never keep a subject alive, and
// disposing after the subject was collected does nothing.
type subscription[E any] struct {
	ref weak.Pointer[PublishSubjectImp[E]]
	key subscriptionKey
}

func (d subscription[E]) Dispose() {
	if s := d.ref.Value(); s != nil {
		s.unsubscribe(d.key)
	}
}

// Key returns the id the key generator produced for this subscription.
func (d subscription[E]) Key() string {
	return d.key.id
}
