// Package heap provides generic binary-heap priority queues: Min always
// exposes the smallest element and Max the largest. The two containers
// are independent single-direction heaps; callers pick whichever
// ordering they need. Neither is safe for concurrent use without
// external locking.
package heap

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmptyHeap is returned by Peek and Dequeue when the heap holds no
// elements. The heap is left unchanged when it is returned.
var ErrEmptyHeap = errors.New("heap: empty heap")

// less reports whether a must sort closer to the root than b.
type less[T any] func(a, b T) bool

func minOrder[T constraints.Ordered](a, b T) bool { return a < b }
func maxOrder[T constraints.Ordered](a, b T) bool { return a > b }

// engine is the heap itself: a slice interpreted as a complete binary
// tree laid out by index, kept so that no parent sorts after its
// children under cmp. Min and Max only differ in the cmp they fix.
type engine[T any] struct {
	items []T
	cmp   less[T]
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

func (e *engine[T]) swap(i, j int) {
	e.items[i], e.items[j] = e.items[j], e.items[i]
}

func (e *engine[T]) push(v T) {
	e.items = append(e.items, v)
	e.up(len(e.items) - 1)
}

func (e *engine[T]) pop() error {
	if len(e.items) == 0 {
		return ErrEmptyHeap
	}

	n := len(e.items) - 1
	e.items[0] = e.items[n]
	e.items = e.items[:n]
	if n > 0 {
		e.down(0)
	}

	return nil
}

func (e *engine[T]) peek() (T, error) {
	if len(e.items) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}

	return e.items[0], nil
}

// up restores the heap order from index i towards the root after an
// insert: the element swaps upward only while it strictly beats its
// parent.
func (e *engine[T]) up(i int) {
	for i > 0 {
		p := parent(i)
		if !e.cmp(e.items[i], e.items[p]) {
			break
		}
		e.swap(i, p)
		i = p
	}
}

// down restores the heap order from index i towards the leaves after
// the root has been replaced. A child only wins a strict comparison,
// left child considered before right, so equal values keep the
// earlier index.
func (e *engine[T]) down(i int) {
	n := len(e.items)
	for {
		best := i
		if l := left(i); l < n && e.cmp(e.items[l], e.items[best]) {
			best = l
		}
		if r := right(i); r < n && e.cmp(e.items[r], e.items[best]) {
			best = r
		}
		if best == i {
			return
		}
		e.swap(i, best)
		i = best
	}
}

// heapify orders an arbitrary backing slice bottom-up in O(n).
func (e *engine[T]) heapify() {
	for i := len(e.items)/2 - 1; i >= 0; i-- {
		e.down(i)
	}
}

func (e *engine[T]) clear() {
	e.items = e.items[:0]
}
