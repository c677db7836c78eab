package disposable

// Disposable releases a single resource, typically a subscription.
// Dispose must be idempotent and must never fail.
type Disposable interface {
	Dispose()
}
