package compact_test

import (
	"fmt"

	"github.com/wfstlib/wfst/compact"
	"github.com/wfstlib/wfst/fst"
	"github.com/wfstlib/wfst/semiring"
	"github.com/wfstlib/wfst/vector"
)

// ExampleBuild packs a three-label single-path acceptor with
// StringCompactor, the most compact representation for the String
// property: one label per state, no stored destination.
func ExampleBuild() {
	f := vector.New(semiring.TropicalSemiring)
	s0 := f.AddState()
	s1 := f.AddState()
	s2 := f.AddState()
	_ = f.SetStart(s0)
	_ = f.AddArc(s0, fst.Arc[semiring.TropicalWeight]{ILabel: 7, OLabel: 7, Weight: semiring.TropicalOne(), NextState: s1})
	_ = f.AddArc(s1, fst.Arc[semiring.TropicalWeight]{ILabel: 8, OLabel: 8, Weight: semiring.TropicalOne(), NextState: s2})
	_ = f.SetFinal(s2, semiring.TropicalOne())

	c := compact.NewStringCompactor(semiring.TropicalSemiring)
	cf, err := compact.Build[semiring.TropicalWeight, compact.StringElement](f, c, semiring.TropicalSemiring)
	if err != nil {
		fmt.Println("build error:", err)
		return
	}

	fmt.Println("type:", cf.Type())
	fmt.Println("num states:", cf.NumStates())
	fmt.Println("first label:", cf.Arc(0, 0).ILabel)

	// Output:
	// type: compact_string
	// num states: 3
	// first label: 7
}
