package observable

import (
	"errors"
	"fmt"

	"github.com/krew-solutions/ascetic-rx-go/asceticrx/option"
)

// ErrNilError is reported by Event.Err for an error event built from a nil error.
var ErrNilError = errors.New("observable: error event without error")

type Kind uint8

const (
	KindNext Kind = iota
	KindError
	KindCompleted
)

func (k Kind) String() string {
	switch k {
	case KindNext:
		return "next"
	case KindError:
		return "error"
	case KindCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Event wraps a notification into one of three contexts: a value (Next),
// a failure (Error) or the end of the sequence (Completed).
// Error and Completed are stop events: nothing may follow them.
//
// The zero Event is Next with the zero value of E.
type Event[E any] struct {
	kind  Kind
	value E
	err   error
}

func Next[E any](value E) Event[E] {
	return Event[E]{kind: KindNext, value: value}
}

func Error[E any](err error) Event[E] {
	return Event[E]{kind: KindError, err: err}
}

func Completed[E any]() Event[E] {
	return Event[E]{kind: KindCompleted}
}

func (e Event[E]) Kind() Kind {
	return e.kind
}

// IsStopEvent reports whether e terminates the sequence.
func (e Event[E]) IsStopEvent() bool {
	switch e.kind {
	case KindError, KindCompleted:
		return true
	default:
		return false
	}
}

// Value returns the payload of a Next event, Nothing otherwise.
func (e Event[E]) Value() option.Option[E] {
	if e.kind != KindNext {
		return option.Nothing[E]()
	}
	return option.Some(e.value)
}

// Err returns the failure carried by an Error event and nil for any other kind.
func (e Event[E]) Err() error {
	if e.kind != KindError {
		return nil
	}
	if e.err == nil {
		return ErrNilError
	}
	return e.err
}

func (e Event[E]) String() string {
	switch e.kind {
	case KindNext:
		return fmt.Sprintf("next(%v)", e.value)
	case KindError:
		return fmt.Sprintf("error(%v)", e.Err())
	default:
		return e.kind.String()
	}
}
