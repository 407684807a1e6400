package cache_test

import (
	"fmt"

	"github.com/wfstlib/wfst/cache"
	"github.com/wfstlib/wfst/fst"
	"github.com/wfstlib/wfst/semiring"
)

// ExampleCache shows the populate-then-read cycle a lazy FST drives a
// Cache through: push arcs one at a time, close the list with SetArcs,
// then answer NumArcs/Arc without recomputation.
func ExampleCache() {
	c := cache.New(semiring.TropicalZero(), 1<<20)

	c.SetStart(0)
	_ = c.PushArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, NextState: 1})
	_ = c.PushArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 2, NextState: 2})
	c.SetArcs(0)
	c.SetFinal(2, semiring.TropicalOne())

	fmt.Println("has arcs:", c.HasArcs(0))
	fmt.Println("num arcs:", c.NumArcs(0))
	fmt.Println("final[2] is one:", c.Final(2).ApproxEqual(semiring.TropicalOne(), 0))
	fmt.Println("final[1] is zero:", c.Final(1).ApproxEqual(semiring.TropicalZero(), 0))

	// Output:
	// has arcs: true
	// num arcs: 2
	// final[2] is one: true
	// final[1] is zero: true
}
