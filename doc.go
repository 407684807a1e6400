// Package wfst is a weighted finite-state transducer library: arcs,
// states and paths carry weights drawn from a semiring rather than
// booleans, so the same machinery expresses acceptors, transducers,
// shortest-distance search and weight-pushing equally.
//
// The module is organized into independently usable packages:
//
//	semiring/ — weight algebras: Boolean, Tropical, Log, Real, and the
//	            composite families (Pair, Power, Tuple, Expectation,
//	            Lexicographic, Gallic, SignedLog, String, MinMax)
//	fst/      — core types shared by every representation: Label,
//	            StateId, Arc, the FST read interface, Properties
//	vector/   — VectorFst, the mutable in-memory representation used
//	            while building and editing machines
//	compact/  — CompactFst, a read-only space-minimized representation
//	            with pluggable Compactor encodings
//	cache/    — the lazy on-demand expansion cache used by operations
//	            that compute an FST's states incrementally
//	mmap/     — memory region management (heap, mmap, borrowed) behind
//	            the binary formats
//	fstio/    — binary encode/decode for VectorFst and CompactFst
//	far/      — FST archive containers: STTABLE, STLIST, and the
//	            degenerate single-FST container
//
// Weights are plain Go values satisfying the self-referential Semiring
// constraint; the zero/one identities live alongside in a SemiringOps
// value, since Go generics carry no notion of a static method on the
// type parameter itself.
package wfst
