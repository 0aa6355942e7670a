package buffer

import "errors"

var ErrOutOfRange = errors.New("Buffer: index out of range")

// Buffer is a fixed-length block of storage with a single owner.
// Ownership moves only by Realloc and Clone, both of which allocate.
type Buffer[T any] struct {
	data []T
}

func New[T any](length int) *Buffer[T] {
	if length < 0 {
		length = 0
	}
	return &Buffer[T]{
		data: make([]T, length),
	}
}

func (b *Buffer[T]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

func (b *Buffer[T]) At(index int) (T, error) {
	var zero T
	if index < 0 || index >= b.Len() {
		return zero, ErrOutOfRange
	}
	return b.data[index], nil
}

func (b *Buffer[T]) Get(index int) T {
	return b.data[index]
}

func (b *Buffer[T]) Set(index int, value T) {
	b.data[index] = value
}

func (b *Buffer[T]) Ptr(index int) *T {
	return &b.data[index]
}

// Live returns the first n slots. The slice aliases the buffer.
func (b *Buffer[T]) Live(n int) []T {
	if n == 0 {
		return nil
	}
	return b.data[:n]
}

func (b *Buffer[T]) Fill(n int, value T) {
	for i := 0; i < n; i++ {
		b.data[i] = value
	}
}

// Zero clears slots [from, to).
func (b *Buffer[T]) Zero(from, to int) {
	var zero T
	for i := from; i < to; i++ {
		b.data[i] = zero
	}
}

// Realloc moves the first live slots into a fresh buffer of the given
// length and releases b.
func (b *Buffer[T]) Realloc(length, live int) *Buffer[T] {
	next := New[T](length)
	copy(next.data, b.data[:live])
	b.Release()
	return next
}

// Clone returns an independent buffer of the same length holding copies
// of the first live slots.
func (b *Buffer[T]) Clone(live int) *Buffer[T] {
	next := New[T](b.Len())
	copy(next.data, b.data[:live])
	return next
}

func (b *Buffer[T]) Release() {
	if b == nil {
		return
	}
	b.data = nil
}
