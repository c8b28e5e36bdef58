package dreamlist

import (
	"fmt"

	"github.com/motoki317/dreamlist/internal"
)

// New creates a new list.
func New[T any](options ...Option[T]) *List[T] {
	config := defaultConfig[T]()
	for _, option := range options {
		option(&config)
	}

	l := &List[T]{}
	for _, v := range config.values {
		l.Push(v)
	}
	return l
}

// List is a singly linked list indexed by floats.
//
// The first pushed element sits at index -1.0, and every element pushed after it takes the next whole index, so a
// list of length N spans -1.0 through N-2.0. A fractional index such as 0.5 addresses the slot between two whole
// indices, which allows Insert to place a value in the middle without renumbering anything below it.
//
// Notice that Push, Pop and Peek work on the head (the newest element, highest index), while Get(-1.0) addresses the
// tail (the oldest element). The two ends are different on purpose.
//
// The zero value is an empty list ready to use. List is not safe for concurrent use.
type List[T any] struct {
	values internal.List[T]
}

// Push adds elem to the head of the list.
func (l *List[T]) Push(elem T) {
	l.values.PushFront(elem)
}

// Pop removes the head element and returns it.
// Returns false if the list is empty.
func (l *List[T]) Pop() (elem T, ok bool) {
	return l.values.PopFront()
}

// Peek returns the head element without removing it.
func (l *List[T]) Peek() (elem T, ok bool) {
	e := l.values.Front()
	if e == nil {
		return
	}
	return e.Value, true
}

// PeekMut returns a pointer to the head element. Writes through it are visible to later reads.
func (l *List[T]) PeekMut() (*T, bool) {
	e := l.values.Front()
	if e == nil {
		return nil, false
	}
	return &e.Value, true
}

// Len returns the number of elements in the list. It walks the whole list.
func (l *List[T]) Len() int {
	return l.values.Len()
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.values.Front() == nil
}

// Get returns the element at index.
// Returns false if index is out of range.
func (l *List[T]) Get(index float64) (elem T, ok bool) {
	_, e := l.locate(index)
	if e == nil {
		return
	}
	return e.Value, true
}

// GetMut returns a pointer to the element at index.
// Returns false if index is out of range.
func (l *List[T]) GetMut(index float64) (*T, bool) {
	_, e := l.locate(index)
	if e == nil {
		return nil, false
	}
	return &e.Value, true
}

// Insert places elem right after (toward the tail from) the element Get(index) would return.
// Inserting at a whole index i makes elem the new element at i, shifting i and everything above it up by one.
// An out-of-range index is silently ignored.
func (l *List[T]) Insert(index float64, elem T) {
	_, e := l.locate(index)
	if e == nil {
		return
	}
	l.values.InsertAfter(elem, e)
}

// Remove unlinks the element Get(index) would return and returns it.
// Returns false if index is out of range.
func (l *List[T]) Remove(index float64) (elem T, ok bool) {
	prev, e := l.locate(index)
	if e == nil {
		return
	}
	return l.values.RemoveAfter(prev)
}

// At returns the element at index.
// It panics with an error wrapping ErrIndexOutOfRange if index is out of range; use Get to check instead.
func (l *List[T]) At(index float64) T {
	elem, ok := l.Get(index)
	if !ok {
		panic(l.outOfRange(index))
	}
	return elem
}

// SetAt replaces the element at index.
// It panics with an error wrapping ErrIndexOutOfRange if index is out of range.
func (l *List[T]) SetAt(index float64, elem T) {
	p, ok := l.GetMut(index)
	if !ok {
		panic(l.outOfRange(index))
	}
	*p = elem
}

// Clear removes all elements, unlinking them one by one.
func (l *List[T]) Clear() {
	l.values.Init()
}

// Slice returns the elements in head-to-tail order.
func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.Len())
	for e := l.values.Front(); e != nil; e = e.Next() {
		s = append(s, e.Value)
	}
	return s
}

// String returns formatted string, head first.
func (l *List[T]) String() string {
	return fmt.Sprint(l.Slice())
}
