// The topk command reads integers and prints the K largest ones in
// descending order. It keeps a min-heap bounded to K elements, so the
// root is always the smallest value still worth keeping.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/darshchaurasia/minmaxheap/heap"
)

var k = flag.Int("k", 3, "How many of the largest values to keep")

func main() {
	flag.Parse()

	if *k <= 0 {
		log.Fatalf("The flag `-k` must be positive, got %d", *k)
	}

	h := heap.NewMinWithCapacity[int](*k)

	consume := func(raw string) {
		v, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("Not an integer: %q", raw)
		}

		if h.Size() < *k {
			h.Enqueue(v)
			return
		}

		smallest, err := h.Peek()
		if err != nil {
			log.Fatalf("Peeking at the heap: %v", err)
		}
		if v > smallest {
			if err := h.Dequeue(); err != nil {
				log.Fatalf("Dequeueing: %v", err)
			}
			h.Enqueue(v)
		}
	}

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			consume(arg)
		}
	} else {
		sc := bufio.NewScanner(os.Stdin)
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			consume(sc.Text())
		}
		if err := sc.Err(); err != nil {
			log.Fatalf("Reading stdin: %v", err)
		}
	}

	// Draining the min-heap yields ascending order, so fill the result
	// back to front.
	result := make([]int, h.Size())
	for i := len(result) - 1; i >= 0; i-- {
		v, err := h.Peek()
		if err != nil {
			log.Fatalf("Peeking at the heap: %v", err)
		}
		if err := h.Dequeue(); err != nil {
			log.Fatalf("Dequeueing: %v", err)
		}
		result[i] = v
	}

	for _, v := range result {
		fmt.Println(v)
	}
}
