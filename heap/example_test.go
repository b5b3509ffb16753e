package heap_test

import (
	"fmt"

	"github.com/darshchaurasia/minmaxheap/heap"
)

func ExampleMin() {
	h := heap.NewMin[int]()
	for _, v := range []int{5, 3, 8, 1, 9} {
		h.Enqueue(v)
	}

	for !h.IsEmpty() {
		v, _ := h.Peek()
		fmt.Println(v)
		h.Dequeue()
	}
	// Output:
	// 1
	// 3
	// 5
	// 8
	// 9
}

func ExampleMax() {
	h := heap.MaxFromSlice([]string{"pear", "apple", "plum"})

	v, _ := h.Peek()
	fmt.Println(v, h.Size())
	// Output: plum 3
}
