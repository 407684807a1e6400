// Package compact implements CompactFst, a read-only, memory-dense
// transducer representation parameterized by a Compactor strategy that
// maps each (state, arc) pair to a small fixed-size Element and back.
// Two storage regimes exist depending on the compactor's declared arity:
// fixed out-degree k stores a flat Element array indexed by s*k+j;
// variable out-degree stores a states-offset array plus a flat compacts
// array, mirroring OpenFst's DefaultCompactStore.
package compact
