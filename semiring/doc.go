// Package semiring defines the Weight algebra that every transducer in
// this module is parameterized over.
//
// A weight type W is a value satisfying the Semiring[W] constraint: it
// carries ⊕ (Plus) with identity Zero, ⊗ (Times) with identity One and
// Zero as its annihilator, a Reverse involution, a Quantize rounding to a
// lattice of a given spacing, and a Member predicate that reports whether
// a value is a valid (in-domain) member of the semiring rather than the
// "NoWeight" sentinel produced by out-of-domain operations (e.g. Divide on
// a non-divisible semiring).
//
// Semiring[W] is deliberately self-referential ("W's own methods return
// W") so that concrete weight types — TropicalWeight, LogWeight, and the
// rest — compile down to unboxed value operations instead of going
// through an interface vtable on every Plus/Times call. Composite weights
// (PairWeight, PowerWeight, ExpectationWeight, ...) are themselves generic
// over their component semirings and implement Semiring[Self] in turn, so
// nesting costs no additional indirection beyond what the component types
// already pay.
//
// Zero and One are not part of the constraint because Go has no notion of
// a static (type-level) interface method: every concrete weight type
// instead exports Zero()/One() package-level functions, and algorithms
// that need the identities without a sample value accept a SemiringOps[W]
// descriptor built from those functions.
package semiring
