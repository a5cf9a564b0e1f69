// Package prefetch bridges a "compute next element or signal end" function to a
// two-call iteration protocol (HasNext / Next) without redundant computation.
//
// What:
//
//   - Iterator[T] wraps a NextFunc[T]. HasNext computes one element ahead and
//     caches it; Next hands out the cached element or computes a fresh one.
//   - The first time the source reports end-of-sequence the iterator latches
//     "exhausted"; every later HasNext is O(1) and never calls the source again.
//   - IsEnumerationStartedEmpty reports whether the very first computation
//     failed. Queried first, it forces exactly one computation.
//   - Remove is unsupported and always returns ErrUnsupported.
//   - All exposes the remaining elements as an iter.Seq[T].
//
// End of sequence is a normal return value (ok == false), never an error or panic.
//
// Errors:
//
//   - ErrExhausted    Next called when no element is available
//   - ErrUnsupported  Remove called
//
// Concurrency: an Iterator is not safe for concurrent use.
package prefetch
