package disposable

import (
	"sync"

	"go.uber.org/atomic"
)

type DisposableImp struct {
	callback func()
	once     sync.Once
	disposed atomic.Bool
}

// NewDisposable returns a Disposable that runs callback on the first Dispose call only.
func NewDisposable(callback func()) *DisposableImp {
	return &DisposableImp{callback: callback}
}

func (d *DisposableImp) Dispose() {
	d.once.Do(func() {
		d.disposed.Store(true)
		if d.callback != nil {
			d.callback()
		}
		d.callback = nil
	})
}

func (d *DisposableImp) IsDisposed() bool {
	return d.disposed.Load()
}

type emptyDisposable struct{}

func (emptyDisposable) Dispose() {}

func (emptyDisposable) IsDisposed() bool {
	return true
}

// Empty returns a Disposable that has nothing to release.
func Empty() Disposable {
	return emptyDisposable{}
}
