package subject

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// KeyGenerator produces subscription ids. The ids only label subscriptions
// in logs and disposables; uniqueness of the registry key is guaranteed by
// the subject regardless of what the generator returns.
type KeyGenerator func() string

// UUIDKeys generates random (version 4) UUID strings.
func UUIDKeys() KeyGenerator {
	return uuid.NewString
}

// ULIDKeys generates lexicographically sortable ULIDs, monotonic within
// the same millisecond, so ids sort in subscription order.
func ULIDKeys() KeyGenerator {
	var mu sync.Mutex
	entropy := ulid.Monotonic(rand.Reader, 0)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
	}
}
