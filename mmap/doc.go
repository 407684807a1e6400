// Package mmap implements Region, a byte range with one of three
// provenances — heap-allocated, memory-mapped from a file, or borrowed
// from a caller-owned buffer — behind one release contract. CompactFst
// stores use a Region to expose typed slices over a packed byte layout
// without copying.
package mmap
