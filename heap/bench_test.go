package heap_test

import (
	"math/rand"
	"testing"

	"github.com/darshchaurasia/minmaxheap/heap"
)

func BenchmarkMinEnqueue(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	values := make([]int, b.N)
	for i := range values {
		values[i] = rng.Int()
	}

	h := heap.NewMinWithCapacity[int](b.N)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		h.Enqueue(values[i])
	}
}

func BenchmarkMinEnqueueDequeue(b *testing.B) {
	rng := rand.New(rand.NewSource(1))

	h := heap.NewMin[int]()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		h.Enqueue(rng.Int())
		if i%2 == 1 {
			if err := h.Dequeue(); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkMaxFromSlice(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	values := make([]int, 100000)
	for i := range values {
		values[i] = rng.Int()
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		heap.MaxFromSlice(values)
	}
}
