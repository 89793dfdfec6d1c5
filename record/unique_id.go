package record

import "sync/atomic"

// uniqueIDCounter is the process-wide monotonic counter backing
// AutoUniqueID (§5). Its zero value starts the sequence at 1 on the
// first Add(1); sync/atomic's Add is sequentially consistent (Go
// offers no weaker ordering).
var uniqueIDCounter atomic.Uint64

// AutoUniqueID returns the next value in a process-wide monotonic
// counter, starting at 1. It has no relation to any particular
// record's content; callers that want a unique_id without supplying
// one of their own can pass this to Builder.WithUniqueID, or call
// Builder.WithAutoUniqueID directly.
func AutoUniqueID() uint64 {
	return uniqueIDCounter.Add(1)
}
