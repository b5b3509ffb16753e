package heap

import "golang.org/x/exp/constraints"

// Max is the mirror image of Min: a binary max-heap whose Peek returns
// the largest element. The zero value is not usable, construct with
// NewMax or one of its variants.
type Max[T constraints.Ordered] struct {
	e engine[T]
}

// NewMax returns an empty max-heap.
func NewMax[T constraints.Ordered]() *Max[T] {
	return &Max[T]{e: engine[T]{cmp: maxOrder[T]}}
}

// NewMaxWithCapacity returns an empty max-heap whose backing storage is
// pre-sized to hold capacity elements. A negative capacity is treated
// as zero.
func NewMaxWithCapacity[T constraints.Ordered](capacity int) *Max[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Max[T]{e: engine[T]{items: make([]T, 0, capacity), cmp: maxOrder[T]}}
}

// MaxFromSlice returns a max-heap holding a copy of items, built in
// O(n).
func MaxFromSlice[T constraints.Ordered](items []T) *Max[T] {
	h := NewMaxWithCapacity[T](len(items))
	h.e.items = append(h.e.items, items...)
	h.e.heapify()
	return h
}

// Enqueue adds item to the heap.
func (h *Max[T]) Enqueue(item T) {
	h.e.push(item)
}

// Dequeue removes the largest element. It returns ErrEmptyHeap if the
// heap is empty. The removed value is not returned; call Peek first to
// observe it.
func (h *Max[T]) Dequeue() error {
	return h.e.pop()
}

// Peek returns the largest element without removing it. It returns
// ErrEmptyHeap if the heap is empty.
func (h *Max[T]) Peek() (T, error) {
	return h.e.peek()
}

// Size returns the number of elements currently held.
func (h *Max[T]) Size() int {
	return len(h.e.items)
}

// IsEmpty reports whether the heap holds no elements.
func (h *Max[T]) IsEmpty() bool {
	return len(h.e.items) == 0
}

// Clear removes all elements, keeping the allocated capacity.
func (h *Max[T]) Clear() {
	h.e.clear()
}
