package heap

import "golang.org/x/exp/constraints"

// Min is a binary min-heap: Peek returns the smallest element in O(1),
// Enqueue and Dequeue run in O(log n). The zero value is not usable,
// construct with NewMin or one of its variants.
type Min[T constraints.Ordered] struct {
	e engine[T]
}

// NewMin returns an empty min-heap.
func NewMin[T constraints.Ordered]() *Min[T] {
	return &Min[T]{e: engine[T]{cmp: minOrder[T]}}
}

// NewMinWithCapacity returns an empty min-heap whose backing storage is
// pre-sized to hold capacity elements. Apart from allocation behavior
// it is identical to NewMin; a negative capacity is treated as zero.
func NewMinWithCapacity[T constraints.Ordered](capacity int) *Min[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Min[T]{e: engine[T]{items: make([]T, 0, capacity), cmp: minOrder[T]}}
}

// MinFromSlice returns a min-heap holding a copy of items. Building
// from a slice is O(n), cheaper than n separate Enqueue calls.
func MinFromSlice[T constraints.Ordered](items []T) *Min[T] {
	h := NewMinWithCapacity[T](len(items))
	h.e.items = append(h.e.items, items...)
	h.e.heapify()
	return h
}

// Enqueue adds item to the heap.
func (h *Min[T]) Enqueue(item T) {
	h.e.push(item)
}

// Dequeue removes the smallest element. It returns ErrEmptyHeap if the
// heap is empty. The removed value is not returned; call Peek first to
// observe it.
func (h *Min[T]) Dequeue() error {
	return h.e.pop()
}

// Peek returns the smallest element without removing it. It returns
// ErrEmptyHeap if the heap is empty.
func (h *Min[T]) Peek() (T, error) {
	return h.e.peek()
}

// Size returns the number of elements currently held.
func (h *Min[T]) Size() int {
	return len(h.e.items)
}

// IsEmpty reports whether the heap holds no elements.
func (h *Min[T]) IsEmpty() bool {
	return len(h.e.items) == 0
}

// Clear removes all elements, keeping the allocated capacity.
func (h *Min[T]) Clear() {
	h.e.clear()
}
