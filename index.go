package dreamlist

import (
	"errors"
	"fmt"
	"math"

	"github.com/motoki317/dreamlist/internal"
)

// ErrIndexOutOfRange is the error At and SetAt panic with.
var ErrIndexOutOfRange = errors.New("index out of range")

func (l *List[T]) outOfRange(index float64) error {
	return fmt.Errorf("%w: %v with length %d", ErrIndexOutOfRange, index, l.Len())
}

// locate finds the element addressed by index, along with the element before it (nil for the head).
// Returns a nil element if index is out of range.
//
// Positions are counted down from the head, which holds N-2. A fractional index is moved up by one before comparing,
// so it resolves to the first element whose position does not exceed it: Get(-0.5) is Get(0.0), Get(0.5) is Get(1.0).
func (l *List[T]) locate(index float64) (prev, e *internal.Element[T]) {
	count := float64(l.Len()) - 2
	if index < -1 || index > count {
		return nil, nil
	}

	target := index
	if index != math.Trunc(index) {
		target++
	}
	for e = l.values.Front(); e != nil; prev, e = e, e.Next() {
		if count <= target {
			return prev, e
		}
		count--
	}
	// NaN never matches
	return nil, nil
}
