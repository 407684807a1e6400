// Package vector implements VectorFst, the mutable, in-memory
// adjacency-list transducer representation: each state owns a final
// weight and an ordered slice of out-arcs, grown incrementally via
// AddState/AddArc/SetFinal. Locking follows the same split-mutex
// discipline as the graph library this module grew from: one lock
// guards the state slice's length and final weights, a second guards
// each state's arc list, so concurrent readers iterating two different
// states' arcs never contend.
package vector
