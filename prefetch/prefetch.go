package prefetch

import (
	"errors"
	"iter"
)

var (
	// ErrExhausted is returned by Next when the sequence has no more elements.
	ErrExhausted = errors.New("prefetch: no more elements")

	// ErrUnsupported is returned by Remove; the underlying sequence is read-only.
	ErrUnsupported = errors.New("prefetch: remove is not supported")
)

// NextFunc computes the next element of a sequence.
// It returns ok == false exactly when the sequence has ended.
type NextFunc[T any] func() (value T, ok bool)

// firstState records the outcome of the very first computation.
type firstState uint8

const (
	firstUnknown firstState = iota // nothing computed yet
	firstProduced                  // the first computation returned an element
	firstEmpty                     // the first computation signalled end
)

// Iterator caches one computed-ahead element between HasNext and Next.
type Iterator[T any] struct {
	next      NextFunc[T]
	cached    T
	hasCached bool
	exhausted bool
	first     firstState
}

// New wraps fn. A nil fn yields an iterator that is empty from the start.
func New[T any](fn NextFunc[T]) *Iterator[T] {
	if fn == nil {
		fn = func() (T, bool) {
			var zero T
			return zero, false
		}
	}

	return &Iterator[T]{next: fn}
}

// Empty returns an iterator with no elements.
func Empty[T any]() *Iterator[T] {
	return New[T](nil)
}

// compute pulls one element from the source unless the iterator has latched.
func (it *Iterator[T]) compute() (T, bool) {
	var zero T
	if it.exhausted {
		return zero, false
	}
	v, ok := it.next()
	if it.first == firstUnknown {
		if ok {
			it.first = firstProduced
		} else {
			it.first = firstEmpty
		}
	}
	if !ok {
		it.exhausted = true
		return zero, false
	}

	return v, true
}

// HasNext reports whether Next would return an element. It computes and caches
// at most one element; repeated calls without Next do not advance the source.
func (it *Iterator[T]) HasNext() bool {
	if it.hasCached {
		return true
	}
	v, ok := it.compute()
	if !ok {
		return false
	}
	it.cached, it.hasCached = v, true

	return true
}

// Next returns the cached element if present, otherwise computes one.
// It returns ErrExhausted when no element is available.
func (it *Iterator[T]) Next() (T, error) {
	if it.hasCached {
		v := it.cached
		var zero T
		it.cached, it.hasCached = zero, false
		return v, nil
	}
	v, ok := it.compute()
	if !ok {
		return v, ErrExhausted
	}

	return v, nil
}

// IsEnumerationStartedEmpty reports whether the first computation signalled
// end-of-sequence. If nothing has been computed yet, it forces one computation
// (caching the element, if any, for the following Next).
func (it *Iterator[T]) IsEnumerationStartedEmpty() bool {
	if it.first == firstUnknown {
		it.HasNext()
	}

	return it.first == firstEmpty
}

// Remove is unsupported.
func (it *Iterator[T]) Remove() error {
	return ErrUnsupported
}

// All returns the remaining elements as a single-use sequence.
// Breaking out of the range loop leaves unconsumed elements in the iterator.
func (it *Iterator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.HasNext() {
			v, err := it.Next()
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
