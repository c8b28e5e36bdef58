package dreamlist_test

import (
	"fmt"

	"github.com/motoki317/dreamlist"
)

func Example() {
	list := dreamlist.New[int]()
	list.Push(1)
	list.Push(2)
	list.Push(3)

	// Indices start at -1.0 with the first pushed element.
	fmt.Println(list.At(-1.0), list.At(0.0), list.At(1.0))
	// Fractional indices resolve toward the head.
	fmt.Println(list.At(-0.5), list.At(0.5))

	// ...and let you insert between two elements.
	list.Insert(-0.5, 42)
	list.Insert(1.5, 69)
	fmt.Println(list)

	// Pop works from the head, the opposite end of index -1.0.
	v, _ := list.Pop()
	fmt.Println(v, list.Len())
	// Output:
	// 1 2 3
	// 2 3
	// [3 69 2 42 1]
	// 3 4
}

func ExampleList_Get() {
	list := dreamlist.New(dreamlist.WithValues(1, 2, 3))

	if _, ok := list.Get(2.0); !ok {
		fmt.Println("out of range")
	}
	v, ok := list.Get(-1.0)
	fmt.Println(v, ok)
	// Output:
	// out of range
	// 1 true
}

func ExampleList_IntoIter() {
	list := dreamlist.New(dreamlist.WithValues("a", "b", "c"))

	it := list.IntoIter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		fmt.Println(v)
	}
	fmt.Println(list.IsEmpty())
	// Output:
	// c
	// b
	// a
	// true
}
