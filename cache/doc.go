// Package cache implements the per-state lazy store that backs derived
// and read-only FSTs: expansion status, final weight, and arcs, each
// filled in by the caller through SetStart/SetFinal/PushArc/SetArcs, with
// a byte-budgeted FIFO eviction policy over unpinned states.
package cache
