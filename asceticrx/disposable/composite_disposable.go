package disposable

import "sync"

type CompositeDisposableImp struct {
	mu          sync.Mutex
	disposables []Disposable
	disposed    bool
}

func NewCompositeDisposable(disposables ...Disposable) *CompositeDisposableImp {
	return &CompositeDisposableImp{disposables: disposables}
}

// Add registers d for disposal together with the rest of the group.
// If the group is already disposed, d is disposed immediately.
func (c *CompositeDisposableImp) Add(d Disposable) {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		d.Dispose()
		return
	}
	c.disposables = append(c.disposables, d)
	c.mu.Unlock()
}

func (c *CompositeDisposableImp) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.disposables)
}

func (c *CompositeDisposableImp) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	disposables := c.disposables
	c.disposables = nil
	c.mu.Unlock()

	for _, d := range disposables {
		d.Dispose()
	}
}

func (c *CompositeDisposableImp) IsDisposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}
