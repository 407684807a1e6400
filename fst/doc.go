// Package fst defines the read-only transducer interface, the arc and
// label types it is built from, and the 64-bit properties bitset that
// every concrete representation (package vector, package compact)
// maintains and propagates. It has no dependency on any particular
// representation: VectorFst and CompactFst both satisfy FST[S] by
// implementing the iterator and accessor methods declared here.
package fst
