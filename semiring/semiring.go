package semiring

import (
	"errors"
	"io"
)

// ErrNotMember is returned by operations that would produce a weight
// outside the semiring's domain (e.g. Divide on a non-left-divisible
// semiring). Callers lift it to the owning FST's Error property bit
// rather than panicking.
var ErrNotMember = errors.New("semiring: result is not a domain member")

// DivideSide selects which operand Divide is solving for, matching
// Divide(a, b, side): side == Left means find q such that b⊗q = a; side
// == Right means find q such that q⊗b = a. Any leaves the choice to the
// semiring's own contract (meaningful when the semiring is commutative).
type DivideSide int

const (
	DivideLeft DivideSide = iota
	DivideRight
	DivideAny
)

// Properties is a bitset of semiring capabilities, independent of (but
// intentionally bit-compatible in spirit with) the FST Properties bitset
// in package fst: a weight type declares which algorithms it may be
// plugged into.
type Properties uint64

const (
	// LeftSemiring holds when Times distributes over Plus from the left.
	LeftSemiring Properties = 1 << iota
	// RightSemiring holds when Times distributes over Plus from the right.
	RightSemiring
	// Commutative holds when Times(a,b) == Times(b,a) for all members.
	Commutative
	// Idempotent holds when Plus(a,a) == a for all members.
	Idempotent
	// Path holds when Plus(a,b) always yields a or b (selects one path),
	// a prerequisite for several shortest-distance algorithms.
	Path
)

// SemiringSemiring is both left- and right-distributive.
const SemiringSemiring = LeftSemiring | RightSemiring

// Semiring is the constraint every weight type in this module satisfies.
// It is self-referential: W's methods consume and produce W, so that a
// concrete instantiation like Semiring[TropicalWeight] resolves to plain
// float64 arithmetic under the generic dispatch, with no boxing.
type Semiring[W any] interface {
	// Plus is the semiring's ⊕: commutative, with identity Zero().
	Plus(other W) W

	// Times is the semiring's ⊗: associative, with identity One() and
	// Zero() as its two-sided annihilator.
	Times(other W) W

	// Member reports whether the receiver is a valid domain value. A
	// false result is the "NoWeight" sentinel: the value came from an
	// operation outside the semiring's domain.
	Member() bool

	// Quantize rounds the receiver to a lattice of spacing delta. It is
	// idempotent: Quantize(Quantize(w, d), d) == Quantize(w, d).
	Quantize(delta float64) W

	// Reverse returns the value to use for this weight when an FST is
	// reversed. For most semirings this is the identity; for StringWeight
	// and similar order-sensitive semirings it is a genuine involution.
	Reverse() W

	// ApproxEqual reports approximate equality up to spacing delta,
	// typically implemented as ApproxEqual(a,b,d) == Member(a) &&
	// Member(b) && |a-b| <= d for scalar semirings.
	ApproxEqual(other W, delta float64) bool

	// Type returns a stable string identifier for the weight type, used
	// as the arc_type in the FST binary header and in compactor type
	// strings (e.g. "tropical", "log", "pair_tropical_real").
	Type() string

	// Properties reports the capability bitset this weight type
	// guarantees, gating which generic algorithms may run over it.
	Properties() Properties
}

// SemiringOps carries the two values that a concrete weight type cannot
// expose through Semiring[W] itself (Go has no static interface methods):
// the additive and multiplicative identities. Generic code that needs
// Zero/One without already holding a sample value takes a SemiringOps[W]
// parameter built from the type's Zero()/One() functions.
type SemiringOps[W Semiring[W]] struct {
	Zero W
	One  W
}

// Divisible is implemented by semirings for which Divide is defined
// (e.g. the tropical and log semirings, which are fields under ⊗).
// Composite semirings such as ExpectationWeight leave Divide undefined
// and do not implement this interface.
type Divisible[W any] interface {
	Divide(other W, side DivideSide) W
}

// WireWriter is implemented by every concrete weight type in this
// package: Write(stream) over the type's raw payload, per spec §4.1. The
// stream carries no type tag — the FST header's arc_type field is the tag.
type WireWriter interface {
	WriteTo(dst io.Writer) error
}

// Adder accumulates a Plus-reduction of a sequence of weights. Folding
// through Add instead of repeated Plus calls lets a semiring implement a
// numerically stable summation (e.g. Kahan summation); every Adder in
// this package, LogWeight's included, is a thin wrapper around repeated
// Plus.
type Adder[W Semiring[W]] interface {
	// Add folds w into the running sum and returns the new sum.
	Add(w W) W

	// Sum returns the current accumulated value without mutating it.
	Sum() W

	// Reset clears the accumulator back to the given initial value.
	Reset(w W)
}
