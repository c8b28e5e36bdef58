package internal

// Element is an element in a singly linked list.
type Element[T any] struct {
	next *Element[T]

	Value T
}

// Next returns the next element toward the tail, or nil.
func (e *Element[T]) Next() *Element[T] {
	return e.next
}

// List implements a generic singly linked list. Each element is reachable only through its predecessor
// (or the list itself for the front), and the length is never stored.
type List[T any] struct {
	front *Element[T]
}

// NewList creates a new linked list.
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// Init unlinks every element one at a time, leaving the list empty.
func (l *List[T]) Init() {
	e := l.front
	l.front = nil
	for e != nil {
		next := e.next
		e.next = nil
		e = next
	}
}

// Len counts the elements in the list.
func (l *List[T]) Len() int {
	n := 0
	for e := l.front; e != nil; e = e.next {
		n++
	}
	return n
}

// Front returns the first element in the list.
func (l *List[T]) Front() *Element[T] {
	return l.front
}

// PushFront adds a new value to the front of the list.
func (l *List[T]) PushFront(value T) *Element[T] {
	e := &Element[T]{Value: value, next: l.front}
	l.front = e
	return e
}

// PopFront removes the front element and returns its value.
func (l *List[T]) PopFront() (value T, ok bool) {
	e := l.front
	if e == nil {
		return
	}
	l.front = e.next
	e.next = nil
	return e.Value, true
}

// InsertAfter inserts a new value immediately after mark.
func (l *List[T]) InsertAfter(value T, mark *Element[T]) *Element[T] {
	e := &Element[T]{Value: value, next: mark.next}
	mark.next = e
	return e
}

// RemoveAfter removes the element following mark and returns its value.
// A nil mark removes the front element.
func (l *List[T]) RemoveAfter(mark *Element[T]) (value T, ok bool) {
	if mark == nil {
		return l.PopFront()
	}
	e := mark.next
	if e == nil {
		return
	}
	mark.next = e.next
	e.next = nil
	return e.Value, true
}
