// Package arraylist implements a generic resizable array that doubles its
// buffer when full and halves it once a removal leaves it a quarter full.
package arraylist

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/hyperbolic-timechamber/arraylist-go/src/buffer"
)

// DefaultCapacity is the buffer length of an empty list.
const DefaultCapacity = 4

// NotFound is returned by Search and IndexFunc when nothing matches.
const NotFound = -1

var (
	ErrOutOfRange = errors.New("ArrayList: index out of range")
	ErrEmpty      = errors.New("ArrayList: empty list")
)

// ArrayList owns exactly one buffer; slots [0, size) are live.
// The zero value is an empty list ready to use.
type ArrayList[T any] struct {
	buf    *buffer.Buffer[T]
	size   int
	logger *zap.Logger
}

func New[T any](opts ...Option) *ArrayList[T] {
	o := buildOptions(opts)
	return &ArrayList[T]{
		buf:    buffer.New[T](DefaultCapacity),
		logger: o.logger,
	}
}

// NewFilled returns a list of size copies of value with room for as many
// more. A non-positive size gives the same list as New.
func NewFilled[T any](size int, value T, opts ...Option) *ArrayList[T] {
	if size <= 0 {
		return New[T](opts...)
	}
	o := buildOptions(opts)
	l := &ArrayList[T]{
		buf:    buffer.New[T](2 * size),
		size:   size,
		logger: o.logger,
	}
	l.buf.Fill(size, value)
	return l
}

// Clone returns a deep copy of l.
func (l *ArrayList[T]) Clone() *ArrayList[T] {
	c := &ArrayList[T]{logger: l.log()}
	c.Assign(l)
	return c
}

// Assign replaces the contents of l with a deep copy of src, including
// its capacity.
func (l *ArrayList[T]) Assign(src *ArrayList[T]) {
	if l == src {
		return
	}
	var next *buffer.Buffer[T]
	if src.buf != nil {
		next = src.buf.Clone(src.size)
	}
	old := l.buf
	l.buf = next
	l.size = src.size
	old.Release()
}

// Release drops the buffer. The list reads as empty with capacity 0 until
// the next mutation, which starts over from the default capacity.
func (l *ArrayList[T]) Release() {
	l.buf.Release()
	l.buf = nil
	l.size = 0
}

func (l *ArrayList[T]) Size() int {
	return l.size
}

func (l *ArrayList[T]) Capacity() int {
	return l.buf.Len()
}

func (l *ArrayList[T]) IsEmpty() bool {
	return l.size == 0
}

func (l *ArrayList[T]) First() (T, error) {
	var zero T
	if l.size == 0 {
		return zero, l.empty("first")
	}
	return l.buf.Get(0), nil
}

func (l *ArrayList[T]) Back() (T, error) {
	var zero T
	if l.size == 0 {
		return zero, l.empty("back")
	}
	return l.buf.Get(l.size - 1), nil
}

func (l *ArrayList[T]) At(index int) (T, error) {
	var zero T
	if !l.live(index) {
		return zero, l.outOfRange("at", index)
	}
	return l.buf.Get(index), nil
}

// Ref returns a pointer to the element at index. It is invalidated by any
// call that grows or shrinks the buffer.
func (l *ArrayList[T]) Ref(index int) (*T, error) {
	if !l.live(index) {
		return nil, l.outOfRange("ref", index)
	}
	return l.buf.Ptr(index), nil
}

func (l *ArrayList[T]) SetAt(index int, value T) error {
	if !l.live(index) {
		return l.outOfRange("set", index)
	}
	l.buf.Set(index, value)
	return nil
}

// Data returns the live elements. The slice shares the list's buffer.
func (l *ArrayList[T]) Data() []T {
	if l.size == 0 {
		return nil
	}
	return l.buf.Live(l.size)
}

// Search returns the index of the first element of l equal to value, or
// NotFound.
func Search[T comparable](l *ArrayList[T], value T) int {
	return slices.Index(l.Data(), value)
}

func (l *ArrayList[T]) IndexFunc(f func(T) bool) int {
	return slices.IndexFunc(l.Data(), f)
}

// Clear swaps the buffer for a fresh one of DefaultCapacity.
func (l *ArrayList[T]) Clear() {
	l.buf.Release()
	l.buf = buffer.New[T](DefaultCapacity)
	l.size = 0
}

func (l *ArrayList[T]) InsertBack(value T) {
	l.ensure()
	if l.size == l.Capacity() {
		l.grow()
	}
	l.buf.Set(l.size, value)
	l.size++
}

// Insert places value at index, moving later elements back by one.
// An index equal to Size appends.
func (l *ArrayList[T]) Insert(value T, index int) error {
	if index < 0 || index > l.size {
		return l.outOfRange("insert", index)
	}
	l.ensure()
	if l.size == l.Capacity() {
		l.grow()
	}
	s := l.buf.Live(l.size + 1)
	copy(s[index+1:], s[index:l.size])
	s[index] = value
	l.size++
	return nil
}

func (l *ArrayList[T]) Remove(index int) error {
	if !l.live(index) {
		return l.outOfRange("remove", index)
	}
	s := l.buf.Live(l.size)
	copy(s[index:], s[index+1:])
	l.drop()
	return nil
}

func (l *ArrayList[T]) PopBack() (T, error) {
	var zero T
	if l.size == 0 {
		return zero, l.empty("pop_back")
	}
	value := l.buf.Get(l.size - 1)
	l.drop()
	return value, nil
}

func (l *ArrayList[T]) Swap(i, k int) error {
	if !l.live(i) {
		return l.outOfRange("swap", i)
	}
	if !l.live(k) {
		return l.outOfRange("swap", k)
	}
	s := l.buf.Live(l.size)
	s[i], s[k] = s[k], s[i]
	return nil
}

// Append copies the live elements of other after those of l. other is not
// modified; l.Append(l) repeats l once.
func (l *ArrayList[T]) Append(other *ArrayList[T]) {
	n := other.size
	if n == 0 {
		return
	}
	l.ensure()
	for l.size+n > l.Capacity() {
		l.grow()
	}
	// other may be l, so read its buffer only after growing.
	s := l.buf.Live(l.size + n)
	copy(s[l.size:], other.buf.Live(n))
	l.size += n
}

func (l *ArrayList[T]) Reverse() {
	if l.size < 2 {
		return
	}
	s := l.buf.Live(l.size)
	tmp := make([]T, l.size)
	copy(tmp, s)
	for i := range s {
		s[i] = tmp[l.size-1-i]
	}
}

// drop removes the last live slot and shrinks if the list is now at most
// a quarter full.
func (l *ArrayList[T]) drop() {
	l.size--
	l.buf.Zero(l.size, l.size+1)
	if c := l.Capacity(); c > 1 && l.size <= c/4 {
		l.shrink()
	}
}

// grow requires size == capacity.
func (l *ArrayList[T]) grow() {
	from := l.Capacity()
	l.buf = l.buf.Realloc(2*from, l.size)
	l.log().Debug("grow", zap.Int("from", from), zap.Int("to", 2*from), zap.Int("size", l.size))
}

// shrink requires size <= capacity/4.
func (l *ArrayList[T]) shrink() {
	from := l.Capacity()
	l.buf = l.buf.Realloc(from/2, l.size)
	l.log().Debug("shrink", zap.Int("from", from), zap.Int("to", from/2), zap.Int("size", l.size))
}

// ensure gives a zero-value or released list its default buffer.
func (l *ArrayList[T]) ensure() {
	if l.buf == nil {
		l.buf = buffer.New[T](DefaultCapacity)
	}
}

func (l *ArrayList[T]) live(index int) bool {
	return index >= 0 && index < l.size
}

func (l *ArrayList[T]) log() *zap.Logger {
	if l.logger == nil {
		l.logger = zap.NewNop()
	}
	return l.logger
}

func (l *ArrayList[T]) outOfRange(op string, index int) error {
	l.log().Warn("index out of bounds", zap.String("op", op), zap.Int("index", index), zap.Int("size", l.size))
	return fmt.Errorf("%w: %s index %d, size %d", ErrOutOfRange, op, index, l.size)
}

func (l *ArrayList[T]) empty(op string) error {
	l.log().Warn("list is empty", zap.String("op", op))
	return fmt.Errorf("%w: %s", ErrEmpty, op)
}
