// Package far implements the FST Archive format: a keyed collection of
// FSTs in one of three container layouts — STTABLE (sorted, random
// access via binary search), STLIST (streamable, sequential scan only),
// and FST (a degenerate single-entry archive). Keys are compared
// lexicographically as raw bytes.
package far
