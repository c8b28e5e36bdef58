package dreamlist

import (
	"iter"

	"github.com/motoki317/dreamlist/internal"
)

// IntoIter yields the elements of a list by value, head first, taking ownership of them.
type IntoIter[T any] struct {
	values internal.List[T]
}

// Next pops the next element. Returns false once the elements are exhausted.
func (it *IntoIter[T]) Next() (elem T, ok bool) {
	return it.values.PopFront()
}

// Iter yields the elements of a list by value, head first.
type Iter[T any] struct {
	next *internal.Element[T]
}

// Next returns the next element. Returns false once the elements are exhausted.
func (it *Iter[T]) Next() (elem T, ok bool) {
	e := it.next
	if e == nil {
		return
	}
	it.next = e.Next()
	return e.Value, true
}

// IterMut yields pointers to the elements of a list, head first.
type IterMut[T any] struct {
	next *internal.Element[T]
}

// Next returns a pointer to the next element. Returns false once the elements are exhausted.
func (it *IterMut[T]) Next() (*T, bool) {
	e := it.next
	if e == nil {
		return nil, false
	}
	it.next = e.Next()
	return &e.Value, true
}

// IntoIter moves all elements into a new iterator, leaving the list empty.
func (l *List[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{values: l.values}
	l.values = internal.List[T]{}
	return it
}

// Iter returns an iterator over the elements.
// Modifying the list while iterating is not supported.
func (l *List[T]) Iter() *Iter[T] {
	return &Iter[T]{next: l.values.Front()}
}

// IterMut returns an iterator over pointers to the elements.
// Modifying the list while iterating is not supported.
func (l *List[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{next: l.values.Front()}
}

// All returns an iterator over the elements, head first.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.values.Front(); e != nil; e = e.Next() {
			if !yield(e.Value) {
				return
			}
		}
	}
}
