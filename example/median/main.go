// The median command reads integers and prints the running median after
// every value. It keeps the lower half of the stream in a max-heap and
// the upper half in a min-heap, so the median is always one Peek away.
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

type tracker struct {
	lower *heap.Max[int] // everything <= median
	upper *heap.Min[int] // everything >= median
}

func newTracker() *tracker {
	return &tracker{
		lower: heap.NewMax[int](),
		upper: heap.NewMin[int](),
	}
}

func (t *tracker) add(v int) error {
	if t.lower.IsEmpty() {
		t.lower.Enqueue(v)
	} else {
		top, err := t.lower.Peek()
		if err != nil {
			return err
		}
		if v <= top {
			t.lower.Enqueue(v)
		} else {
			t.upper.Enqueue(v)
		}
	}

	// Rebalance so the halves never differ by more than one element.
	if t.lower.Size() > t.upper.Size()+1 {
		return move(t.lower.Peek, t.lower.Dequeue, t.upper.Enqueue)
	} else if t.upper.Size() > t.lower.Size() {
		return move(t.upper.Peek, t.upper.Dequeue, t.lower.Enqueue)
	}
	return nil
}

func move(peek func() (int, error), dequeue func() error, enqueue func(int)) error {
	v, err := peek()
	if err != nil {
		return err
	}
	if err := dequeue(); err != nil {
		return err
	}
	enqueue(v)
	return nil
}

func (t *tracker) median() (float64, error) {
	low, err := t.lower.Peek()
	if err != nil {
		return 0, err
	}

	if t.lower.Size() > t.upper.Size() {
		return float64(low), nil
	}

	high, err := t.upper.Peek()
	if err != nil {
		return 0, err
	}
	return float64(low+high) / 2, nil
}

func main() {
	flag.Parse()

	tr := newTracker()

	process := func(raw string) {
		v, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("Not an integer: %q", raw)
		}
		if err := tr.add(v); err != nil {
			log.Fatalf("Adding %d: %v", v, err)
		}
		m, err := tr.median()
		if err != nil {
			log.Fatalf("Computing the median: %v", err)
		}
		fmt.Printf("value=%d median=%g\n", v, m)
	}

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			process(arg)
		}
		return
	}

	sc := bufio.NewScanner(os.Stdin)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		process(sc.Text())
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("Reading stdin: %v", err)
	}
}
